package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayward/organizer/internal/domain/model"
	"github.com/dayward/organizer/internal/store"
)

func newDayFixture(t *testing.T) (*DayService, *captureDispatcher, *store.Store) {
	t.Helper()
	s, err := store.Open(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	d := &captureDispatcher{}
	return NewDayService(s, d, testLogger()), d, s
}

func TestDaySynthesizesEmptyRecord(t *testing.T) {
	svc, _, _ := newDayFixture(t)
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 8, Mday: 24}

	day, err := svc.Day(context.Background(), user, date)
	require.NoError(t, err)
	assert.Equal(t, date, day.Date)
	assert.Equal(t, user, day.User)
	assert.True(t, day.Empty())
}

func TestSetDayRoundTrip(t *testing.T) {
	svc, d, _ := newDayFixture(t)
	ctx := context.Background()
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 3, Mday: 14}

	require.NoError(t, svc.SetDay(ctx, user, model.Day{Date: date, Notes: "pi day"}))

	day, err := svc.Day(ctx, user, date)
	require.NoError(t, err)
	assert.Equal(t, "pi day", day.Notes)

	u := d.last(t)
	require.NotNil(t, u.GetDay())
	assert.True(t, u.GetDay().GetDay().GetHasNotes())
	// Wire months are zero-based.
	assert.EqualValues(t, 2, u.GetDay().GetDay().GetDate().GetMonth())
}

func TestSetDayAllEmptyDeletesRow(t *testing.T) {
	svc, d, s := newDayFixture(t)
	ctx := context.Background()
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 3, Mday: 14}

	require.NoError(t, svc.SetDay(ctx, user, model.Day{Date: date, Color: "red"}))
	require.NoError(t, svc.SetDay(ctx, user, model.Day{Date: date}))

	_, err := s.Days.Get(ctx, user, date)
	assert.ErrorIs(t, err, model.ErrNotFound, "a day row exists only while it carries data")

	// The clearing write is still announced.
	u := d.last(t)
	require.NotNil(t, u.GetDay())
	assert.Empty(t, u.GetDay().GetDay().GetColor())
}

func TestSetColorPublishes(t *testing.T) {
	svc, d, _ := newDayFixture(t)
	ctx := context.Background()
	user := uuid.New()
	date := model.Date{Year: 2026, Month: 1, Mday: 2}

	require.NoError(t, svc.SetColor(ctx, user, date, "green"))

	u := d.last(t)
	require.NotNil(t, u.GetDayColor())
	assert.Equal(t, "green", u.GetDayColor().GetColor())
	assert.Equal(t, user.String(), u.GetDayColor().GetUser())
	assert.EqualValues(t, 0, u.GetDayColor().GetDate().GetMonth())
}

func TestColorDefinitionsCached(t *testing.T) {
	svc, _, s := newDayFixture(t)
	ctx := context.Background()

	defs, err := svc.ColorDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 5)

	// Wiping the table proves the second read comes from the cache.
	_, err = s.DB().Exec("DELETE FROM day_colors")
	require.NoError(t, err)

	cached, err := svc.ColorDefinitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, defs, cached)
}

func TestMonthSummaries(t *testing.T) {
	svc, _, _ := newDayFixture(t)
	ctx := context.Background()
	user := uuid.New()

	require.NoError(t, svc.SetDay(ctx, user, model.Day{
		Date:  model.Date{Year: 2026, Month: 6, Mday: 10},
		Color: "red",
		Notes: "n",
	}))

	days, err := svc.Month(ctx, user, 2026, 6)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 10, days[0].Date.Mday)
	assert.True(t, days[0].HasNotes)
	assert.False(t, days[0].HasReport)
}
