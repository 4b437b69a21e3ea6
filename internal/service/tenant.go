package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dayward/organizer/internal/domain/model"
	"github.com/dayward/organizer/internal/store"
)

// Tenanter creates tenants with their initial users.
type Tenanter interface {
	Create(ctx context.Context, tenant model.Tenant, users []model.User) (model.Tenant, []model.User, error)
}

type TenantService struct {
	repo   *store.TenantRepo
	logger *slog.Logger
}

func NewTenantService(s *store.Store, logger *slog.Logger) *TenantService {
	return &TenantService{
		repo:   s.Tenants,
		logger: logger.With(slog.String("service", "tenant")),
	}
}

// Create validates and persists the tenant and its users. Missing uuids are
// generated. The submitted kinds win; the zero values are the defaults
// (tenant Guest, user Regular). Users are always created active.
func (s *TenantService) Create(ctx context.Context, tenant model.Tenant, users []model.User) (model.Tenant, []model.User, error) {
	if tenant.Name == "" {
		return model.Tenant{}, nil, model.ErrMissingTenantName
	}
	for _, u := range users {
		if u.Email == "" {
			return model.Tenant{}, nil, fmt.Errorf("user %q: %w", u.Name, model.ErrMissingUserEmail)
		}
		if u.Name == "" {
			return model.Tenant{}, nil, fmt.Errorf("user %q: %w", u.Email, model.ErrMissingUserName)
		}
	}

	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	tenant.Active = true

	if err := s.repo.InsertTenant(ctx, tenant); err != nil {
		return model.Tenant{}, nil, err
	}

	created := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		u.Tenant = tenant.ID
		u.Active = true
		if err := s.repo.InsertUser(ctx, u); err != nil {
			return model.Tenant{}, nil, err
		}
		created = append(created, u)
	}

	s.logger.Info("tenant created",
		slog.String("tenant", tenant.ID.String()),
		slog.Int("users", len(created)),
	)
	return tenant, created, nil
}
