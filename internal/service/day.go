package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	"github.com/dayward/organizer/internal/domain/model"
	grpcmarshaller "github.com/dayward/organizer/internal/handler/marshaller/grpc"
	"github.com/dayward/organizer/internal/store"
)

const (
	colorCacheKey = "global"
	colorCacheTTL = 5 * time.Minute
)

// Dayer is the day-diary service used by the transport handlers. Months are
// one-based here; the transport boundary owns the wire conversion.
type Dayer interface {
	ColorDefinitions(ctx context.Context) ([]model.DayColor, error)
	Day(ctx context.Context, user uuid.UUID, date model.Date) (model.Day, error)
	Month(ctx context.Context, user uuid.UUID, year, month int) ([]model.DaySummary, error)
	SetColor(ctx context.Context, user uuid.UUID, date model.Date, color string) error
	SetDay(ctx context.Context, user uuid.UUID, day model.Day) error
}

type DayService struct {
	repo    *store.DayRepo
	updates UpdateDispatcher
	logger  *slog.Logger

	// The catalog is read-only through this service; cache it briefly so the
	// month view doesn't hammer the database.
	colors *expirable.LRU[string, []model.DayColor]
}

func NewDayService(s *store.Store, updates UpdateDispatcher, logger *slog.Logger) *DayService {
	return &DayService{
		repo:    s.Days,
		updates: updates,
		logger:  logger.With(slog.String("service", "day")),
		colors:  expirable.NewLRU[string, []model.DayColor](1, nil, colorCacheTTL),
	}
}

func (s *DayService) ColorDefinitions(ctx context.Context) ([]model.DayColor, error) {
	if cached, ok := s.colors.Get(colorCacheKey); ok {
		return cached, nil
	}
	defs, err := s.repo.ColorDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	s.colors.Add(colorCacheKey, defs)
	return defs, nil
}

// Day returns the stored record for (user, date), or a synthetic empty
// record carrying the requested date and user when no row exists.
func (s *DayService) Day(ctx context.Context, user uuid.UUID, date model.Date) (model.Day, error) {
	day, err := s.repo.Get(ctx, user, date)
	if errors.Is(err, model.ErrNotFound) {
		return model.Day{Date: date, User: user}, nil
	}
	if err != nil {
		return model.Day{}, err
	}
	return day, nil
}

func (s *DayService) Month(ctx context.Context, user uuid.UUID, year, month int) ([]model.DaySummary, error) {
	return s.repo.Month(ctx, user, year, month)
}

// SetColor upserts the color for (date, user); an empty color clears it.
func (s *DayService) SetColor(ctx context.Context, user uuid.UUID, date model.Date, color string) error {
	if err := s.repo.SetColor(ctx, user, date, color); err != nil {
		return err
	}
	s.publish(ctx, grpcmarshaller.DayColorUpdate(user, date, color))
	return nil
}

// SetDay upserts the full record. A record with no meaningful data removes
// the row: a day row exists only when at least one field is set.
func (s *DayService) SetDay(ctx context.Context, user uuid.UUID, day model.Day) error {
	day.User = user
	var err error
	if day.Empty() {
		err = s.repo.Delete(ctx, user, day.Date)
	} else {
		err = s.repo.Upsert(ctx, day)
	}
	if err != nil {
		return err
	}
	s.publish(ctx, grpcmarshaller.DayUpdate(day))
	return nil
}

func (s *DayService) publish(ctx context.Context, u *orgpb.Update) {
	if err := s.updates.Publish(ctx, u); err != nil {
		s.logger.Error("failed to publish update", slog.Any("err", err))
	}
}
