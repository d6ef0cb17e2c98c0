package main

import (
	"context"
	"database/sql"
	"fmt"
	root "studiohub"
	"studiohub/internal/config"
	"studiohub/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations up to version, or all of
// them when version is zero.
func migrateSchema(ctx context.Context, db *sql.DB, version int64) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if version > 0 {
		if err := goose.UpToContext(ctx, db, "migrations", version); err != nil {
			return fmt.Errorf("could not migrate schema to %d: %w", version, err)
		}
	} else if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	logger.Info(ctx, "schema migrated", zap.Int64("version", current))

	return nil
}

// migrateQueue brings the River job tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "river queue migrated", zap.Int("version", v.Version))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that brings the studio
// schema and the job queue tables to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			version, _ := cmd.Flags().GetInt64("to")
			skipQueue, _ := cmd.Flags().GetBool("skip-queue")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "migrations need a plain database handle")
			}

			if err := migrateSchema(ctx, db, version); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if skipQueue {
				return
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Int64("to", 0, "Schema version to migrate to; 0 applies every migration")
	cmd.Flags().Bool("skip-queue", false, "Leave the River job tables alone")

	return cmd
}
