package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits,
// so a rolled back order or signup never sends its notification. It reports
// false when River skipped the job as a unique duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, fmt.Errorf("could not insert job %s: storage has no river client", args.Kind())
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
