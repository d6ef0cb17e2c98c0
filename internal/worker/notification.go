package worker

import (
	"context"
	"errors"
	"fmt"
	"studiohub/pkg/logger"
	"studiohub/pkg/notify"
	"studiohub/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rateLimitedSnooze is how long a job waits when the broker pushes back.
const rateLimitedSnooze = 30 * time.Second

// NotificationWorker delivers queued notifications through a notify.Sender.
// Delivery failures are returned so River retries them with backoff, up to
// notify.JobMaxAttempts. Messages that can never be delivered are cancelled.
// Secrets such as link tokens are added by the linker at delivery time and
// never sit in the job table.
type NotificationWorker struct {
	river.WorkerDefaults[notify.JobArgs]

	sender notify.Sender
	linker notify.Linker
}

// NewNotificationWorker builds the worker. A nil linker delivers messages as
// queued.
func NewNotificationWorker(sender notify.Sender, linker notify.Linker) *NotificationWorker {
	return &NotificationWorker{sender: sender, linker: linker}
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[notify.JobArgs]) error {
	msg := job.Args.Message
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("template", string(msg.Template)),
		zap.String("tenantID", msg.TenantID))

	if msg.To == "" || msg.Template == "" {
		logger.Warn(ctx, "dropping notification without recipient or template")

		return river.JobCancel(serrors.With(serrors.ErrBadRequest, "notification has no recipient or template")) //nolint: wrapcheck
	}

	if w.linker != nil {
		linked, err := w.linker.Link(ctx, msg)
		if err != nil {
			if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
				logger.Warn(ctx, "dropping notification that cannot be linked", zap.Error(err))

				return river.JobCancel(err) //nolint: wrapcheck
			}
			logger.Error(ctx, "could not link notification", zap.Error(err))

			return fmt.Errorf("could not link notification: %w", err)
		}
		msg = linked
	}

	if err := w.sender.Send(ctx, msg); err != nil {
		switch {
		case errors.Is(err, serrors.ErrBadRequest):
			logger.Error(ctx, "notification rejected", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			logger.Warn(ctx, "notification sender is rate limited", zap.Error(err))

			return river.JobSnooze(rateLimitedSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not send notification", zap.Error(err))

		return fmt.Errorf("could not send notification: %w", err)
	}

	logger.Info(ctx, "notification sent")

	return nil
}
