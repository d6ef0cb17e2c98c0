package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
	"studiohub/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTenant(t *testing.T, slug string) domain.Tenant {
	t.Helper()

	s, err := domain.NewTenantSlug(slug)
	require.NoError(t, err)

	return domain.Tenant{
		ID:       domain.TenantID(uuid.New()),
		Slug:     s,
		Name:     slug,
		Tier:     domain.TierStarter,
		Status:   domain.TenantStatusActive,
		Currency: domain.DefaultCurrency,
	}
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	committed := newTenant(t, "committed")
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreTenant(ctx, committed)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := pg.TenantByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	rolledBack := newTenant(t, "rolled-back")
	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreTenant(ctx, rolledBack)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err = pg.TenantByID(ctx, rolledBack.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_SignupIsAtomic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tenant := newTenant(t, "atomic")
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreTenant(ctx, tenant); err != nil {
			return err
		}
		_, err := s.StoreUser(ctx, domain.User{
			ID:       domain.UserID(uuid.New()),
			TenantID: tenant.ID,
			Email:    "owner@example.com",
			Role:     domain.RoleOwner,
		})

		return err
	})
	require.NoError(t, err)

	user, err := pg.UserByEmail(ctx, tenant.ID, "owner@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	failing := newTenant(t, "not-atomic")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreTenant(ctx, failing); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err := pg.TenantBySlug(ctx, failing.Slug)
	require.NoError(t, err)
	require.Nil(t, got)
}
