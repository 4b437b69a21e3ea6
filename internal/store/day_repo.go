package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dayward/organizer/internal/domain/model"
)

// DayRepo owns the SQL for the day diary and the day-color catalog.
type DayRepo struct {
	gw *Gateway
}

func NewDayRepo(gw *Gateway) *DayRepo {
	return &DayRepo{gw: gw}
}

// ColorDefinitions returns the global catalog ordered by score descending.
func (r *DayRepo) ColorDefinitions(ctx context.Context) ([]model.DayColor, error) {
	rows, err := r.gw.Query(ctx,
		"SELECT id, name, color, score FROM day_colors WHERE tenant IS NULL ORDER BY score DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DayColor
	for rows.Next() {
		var (
			dc model.DayColor
			id string
		)
		if err := rows.Scan(&id, &dc.Name, &dc.Color, &dc.Score); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
		}
		if dc.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad day color id %q: %w", id, err)
		}
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return result, nil
}

// Get returns the day row for (user, date), or model.ErrNotFound when no row
// exists. The caller synthesizes the empty record.
func (r *DayRepo) Get(ctx context.Context, user uuid.UUID, date model.Date) (model.Day, error) {
	row := r.gw.QueryRow(ctx,
		"SELECT color, notes, report FROM day WHERE user=? AND date=?",
		user.String(), date.String(),
	)
	var color, notes, report sql.NullString
	err := row.Scan(&color, &notes, &report)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Day{}, fmt.Errorf("day %s: %w", date, model.ErrNotFound)
	}
	if err != nil {
		return model.Day{}, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return model.Day{
		Date:   date,
		User:   user,
		Color:  color.String,
		Notes:  notes.String,
		Report: report.String,
	}, nil
}

// Month returns the day summaries for (user, year, month). Month is
// one-based here; the transport boundary owns the wire conversion.
func (r *DayRepo) Month(ctx context.Context, user uuid.UUID, year, month int) ([]model.DaySummary, error) {
	from := model.Date{Year: year, Month: month, Mday: 1}
	toYear, toMonth := year, month+1
	if toMonth > 12 {
		toYear, toMonth = year+1, 1
	}
	to := model.Date{Year: toYear, Month: toMonth, Mday: 1}

	rows, err := r.gw.Query(ctx,
		"SELECT date, color, notes IS NULL, report IS NULL FROM day WHERE user=? AND date>=? AND date<? ORDER BY date",
		user.String(), from.String(), to.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DaySummary
	for rows.Next() {
		var (
			dateStr           string
			color             sql.NullString
			noNotes, noReport bool
		)
		if err := rows.Scan(&dateStr, &color, &noNotes, &noReport); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
		}
		date, err := model.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		result = append(result, model.DaySummary{
			Date:      date,
			User:      user,
			Color:     color.String,
			HasNotes:  !noNotes,
			HasReport: !noReport,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabase, err)
	}
	return result, nil
}

// SetColor upserts the color for (date, user). An empty color writes NULL.
func (r *DayRepo) SetColor(ctx context.Context, user uuid.UUID, date model.Date, color string) error {
	if color == "" {
		_, err := r.gw.Exec(ctx,
			"UPDATE day SET color=NULL WHERE date=? AND user=?",
			date.String(), user.String(),
		)
		return err
	}
	_, err := r.gw.Exec(ctx,
		`INSERT INTO day (date, user, color) VALUES (?, ?, ?)
		 ON CONFLICT(date, user) DO UPDATE SET color=excluded.color`,
		date.String(), user.String(), color,
	)
	return err
}

// Upsert writes the full day record; empty fields become NULL.
func (r *DayRepo) Upsert(ctx context.Context, day model.Day) error {
	_, err := r.gw.Exec(ctx,
		`INSERT INTO day (date, user, color, notes, report) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(date, user) DO UPDATE SET
			color=excluded.color,
			notes=excluded.notes,
			report=excluded.report`,
		day.Date.String(), day.User.String(),
		nullIfEmpty(day.Color), nullIfEmpty(day.Notes), nullIfEmpty(day.Report),
	)
	return err
}

// Delete removes the row for (date, user). No-op if absent.
func (r *DayRepo) Delete(ctx context.Context, user uuid.UUID, date model.Date) error {
	_, err := r.gw.Exec(ctx,
		"DELETE FROM day WHERE date=? AND user=?",
		date.String(), user.String(),
	)
	return err
}
