package notify

import (
	"context"
	"studiohub/pkg/logger"
	"studiohub/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// JobMaxAttempts bounds River retries of one notification.
const JobMaxAttempts = 10

// JobArgs is the River job that delivers one Message.
type JobArgs struct {
	Message Message `json:"message"`
}

func (JobArgs) Kind() string { return "SendNotificationJob" }

func (JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: JobMaxAttempts}
}

// Enqueue schedules msg for delivery by the notification worker. A failure is
// logged and swallowed: a lost e-mail must never fail the operation that
// triggered it.
func Enqueue(ctx context.Context, jobs storage.JobStorage, msg Message) {
	if _, err := jobs.AddJob(ctx, JobArgs{Message: msg}, nil); err != nil {
		logger.Error(ctx, "could not enqueue notification",
			zap.String("template", string(msg.Template)),
			zap.String("tenantID", msg.TenantID),
			zap.Error(err))
	}
}
