package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/dayward/organizer/internal/domain/model"
)

// Gateway is the thin façade over the SQL driver used by every repository.
// All values are bound as parameters, driver failures are mapped onto
// model.ErrDatabase, and every call runs through a circuit breaker so a
// wedged database fails fast instead of piling up handlers.
type Gateway struct {
	db      *sql.DB
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker
}

func NewGateway(db *sql.DB, logger *slog.Logger) *Gateway {
	return &Gateway{
		db:     db,
		logger: logger,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "datastore",
			Timeout: 10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 8
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("datastore breaker state change",
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

// Exec runs a DML statement and returns the affected row count.
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		return g.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return 0, g.wrap(err, query)
	}
	affected, err := res.(sql.Result).RowsAffected()
	if err != nil {
		return 0, g.wrap(err, query)
	}
	return affected, nil
}

// Query runs a row-returning statement. The caller owns the rows.
func (g *Gateway) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		return g.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, g.wrap(err, query)
	}
	return res.(*sql.Rows), nil
}

// QueryRow runs a statement expected to return at most one row. Scan errors
// (including sql.ErrNoRows) are the caller's to interpret.
func (g *Gateway) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return g.db.QueryRowContext(ctx, query, args...)
}

func (g *Gateway) wrap(err error, query string) error {
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		g.logger.Error("datastore breaker rejected call")
	} else {
		g.logger.Error("datastore call failed", slog.Any("err", err), slog.String("query", query))
	}
	return fmt.Errorf("%w: %v", model.ErrDatabase, err)
}
