package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job is
// inserted with it, so a notification is only sent for committed changes.
type JobStorage interface {
	// AddJob returns false when a unique job with the same arguments is
	// already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
