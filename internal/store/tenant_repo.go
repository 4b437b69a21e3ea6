package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dayward/organizer/internal/domain/model"
)

// TenantRepo owns the SQL for tenants and their users.
type TenantRepo struct {
	gw *Gateway
}

func NewTenantRepo(gw *Gateway) *TenantRepo {
	return &TenantRepo{gw: gw}
}

func (r *TenantRepo) InsertTenant(ctx context.Context, t model.Tenant) error {
	props, err := json.Marshal(t.Properties)
	if err != nil {
		return fmt.Errorf("marshal tenant properties: %w", err)
	}
	_, err = r.gw.Exec(ctx,
		"INSERT INTO tenant (id, name, kind, descr, active, properties) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID.String(), t.Name, int32(t.Kind), nullIfEmpty(t.Descr), t.Active, string(props),
	)
	return err
}

func (r *TenantRepo) InsertUser(ctx context.Context, u model.User) error {
	_, err := r.gw.Exec(ctx,
		"INSERT INTO user (id, tenant, name, email, kind, active, descr) VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.ID.String(), u.Tenant.String(), u.Name, u.Email, int32(u.Kind), u.Active, nullIfEmpty(u.Descr),
	)
	return err
}
