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

func newTenantFixture(t *testing.T) *TenantService {
	t.Helper()
	s, err := store.Open(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewTenantService(s, testLogger())
}

func TestCreateTenantValidation(t *testing.T) {
	svc := newTenantFixture(t)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, model.Tenant{}, nil)
	assert.ErrorIs(t, err, model.ErrMissingTenantName)

	_, _, err = svc.Create(ctx, model.Tenant{Name: "acme"}, []model.User{{Name: "jane"}})
	assert.ErrorIs(t, err, model.ErrMissingUserEmail)

	_, _, err = svc.Create(ctx, model.Tenant{Name: "acme"}, []model.User{{Email: "jane@acme.test"}})
	assert.ErrorIs(t, err, model.ErrMissingUserName)
}

func TestCreateTenantDefaults(t *testing.T) {
	svc := newTenantFixture(t)

	tenant, users, err := svc.Create(context.Background(),
		model.Tenant{Name: "acme"},
		[]model.User{{Name: "jane", Email: "jane@acme.test"}},
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tenant.ID, "missing ids are generated")
	assert.Equal(t, model.TenantGuest, tenant.Kind, "the zero kind is the default")
	assert.True(t, tenant.Active)

	require.Len(t, users, 1)
	assert.NotEqual(t, uuid.Nil, users[0].ID)
	assert.Equal(t, tenant.ID, users[0].Tenant)
	assert.Equal(t, model.UserRegular, users[0].Kind)
	assert.True(t, users[0].Active, "users are always created active")
}

func TestCreateTenantSubmittedValuesWin(t *testing.T) {
	svc := newTenantFixture(t)

	id := uuid.New()
	tenant, users, err := svc.Create(context.Background(),
		model.Tenant{ID: id, Name: "acme", Kind: model.TenantSuper},
		[]model.User{{Name: "root", Email: "root@acme.test", Kind: model.UserSuper}},
	)
	require.NoError(t, err)
	assert.Equal(t, id, tenant.ID)
	assert.Equal(t, model.TenantSuper, tenant.Kind)
	assert.Equal(t, model.UserSuper, users[0].Kind)
}
