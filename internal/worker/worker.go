// Package worker runs the River background jobs of the platform.
package worker

import (
	"context"
	"fmt"
	"studiohub/pkg/logger"
	"studiohub/pkg/notify"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client started by Start.
type Options struct {
	// MaxWorkers bounds the concurrently running jobs of the default queue.
	MaxWorkers int
}

// Workers registers every job handled by this package.
func Workers(sender notify.Sender, linker notify.Linker) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(sender, linker))

	return workers
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	sender notify.Sender,
	linker notify.Linker,
	opts Options,
) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 20
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: Workers(sender, linker),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
