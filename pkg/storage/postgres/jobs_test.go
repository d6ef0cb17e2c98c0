package postgres_test

import (
	"context"
	"database/sql"
	"studiohub/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type testNotificationArgs struct {
	Template string `json:"template"`
}

func (testNotificationArgs) Kind() string { return "test_notification" }

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(storage.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	require.NoError(t, err)
}

func TestPgSQL_AddJob_WithinTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, testNotificationArgs{Template: "order_confirmation"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&testNotificationArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_RolledBackTransactionDropsJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddJob(ctx, testNotificationArgs{Template: "invitation"}, nil)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	var count int
	require.NoError(t, pg.DB.(*sql.DB).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM river_job WHERE kind = $1`, testNotificationArgs{}.Kind()).Scan(&count))
	require.Zero(t, count)
}

func TestPgSQL_AddJob_OutsideTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, testNotificationArgs{Template: "password_reset"}, &river.InsertOpts{Queue: river.QueueDefault})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&testNotificationArgs{},
		nil,
	)
}
