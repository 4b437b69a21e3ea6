package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayward/organizer/internal/domain/model"
)

func TestDayRepoColorDefinitionsSeeded(t *testing.T) {
	s := newTestStore(t)

	defs, err := s.Days.ColorDefinitions(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 5)
	for i := 1; i < len(defs); i++ {
		assert.GreaterOrEqual(t, defs[i-1].Score, defs[i].Score, "catalog is score-descending")
	}
}

func TestDayRepoGetUpsertDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 8, Mday: 24}

	_, err := s.Days.Get(ctx, user, date)
	assert.ErrorIs(t, err, model.ErrNotFound)

	day := model.Day{Date: date, User: user, Color: "green", Notes: "quiet day"}
	require.NoError(t, s.Days.Upsert(ctx, day))

	got, err := s.Days.Get(ctx, user, date)
	require.NoError(t, err)
	assert.Equal(t, "green", got.Color)
	assert.Equal(t, "quiet day", got.Notes)
	assert.Empty(t, got.Report)

	day.Report = "done"
	require.NoError(t, s.Days.Upsert(ctx, day))
	got, err = s.Days.Get(ctx, user, date)
	require.NoError(t, err)
	assert.Equal(t, "done", got.Report)

	require.NoError(t, s.Days.Delete(ctx, user, date))
	_, err = s.Days.Get(ctx, user, date)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDayRepoSetColor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 1, Mday: 2}

	require.NoError(t, s.Days.SetColor(ctx, user, date, "red"))
	got, err := s.Days.Get(ctx, user, date)
	require.NoError(t, err)
	assert.Equal(t, "red", got.Color)

	// Clearing the color keeps the row but nulls the column.
	require.NoError(t, s.Days.SetColor(ctx, user, date, ""))
	got, err = s.Days.Get(ctx, user, date)
	require.NoError(t, err)
	assert.Empty(t, got.Color)
}

func TestDayRepoMonthRange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := uuid.New()

	in1 := model.Day{Date: model.Date{Year: 2026, Month: 12, Mday: 1}, User: user, Color: "red"}
	in2 := model.Day{Date: model.Date{Year: 2026, Month: 12, Mday: 31}, User: user, Notes: "notes"}
	out1 := model.Day{Date: model.Date{Year: 2026, Month: 11, Mday: 30}, User: user, Color: "blue"}
	out2 := model.Day{Date: model.Date{Year: 2027, Month: 1, Mday: 1}, User: user, Color: "blue"}
	for _, d := range []model.Day{in1, in2, out1, out2} {
		require.NoError(t, s.Days.Upsert(ctx, d))
	}

	// December wraps the range into the next year.
	days, err := s.Days.Month(ctx, user, 2026, 12)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Date.Mday)
	assert.Equal(t, "red", days[0].Color)
	assert.False(t, days[0].HasNotes)
	assert.Equal(t, 31, days[1].Date.Mday)
	assert.True(t, days[1].HasNotes)
	assert.False(t, days[1].HasReport)
}
