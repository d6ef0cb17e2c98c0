package worker_test

import (
	"context"
	"errors"
	"studiohub/internal/worker"
	"studiohub/pkg/logger"
	"studiohub/pkg/notify"
	mocknotify "studiohub/pkg/notify/mock"
	"studiohub/pkg/serrors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, msg notify.Message) *river.Job[notify.JobArgs] {
	return &river.Job[notify.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   notify.JobArgs{Message: msg},
	}
}

func confirmation() notify.Message {
	return notify.Message{
		Template: notify.TemplateOrderConfirmation,
		TenantID: "t-1",
		To:       "ada@example.com",
		Data:     map[string]string{"orderNumber": "ORD-20240101-ABCDEF"},
	}
}

func TestNotificationWorker_Sends(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	w := worker.NewNotificationWorker(sender, nil)

	sender.EXPECT().Send(gomock.Any(), confirmation()).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, confirmation())))
}

func TestNotificationWorker_TransientErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	w := worker.NewNotificationWorker(sender, nil)

	broker := errors.New("broker unreachable")
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(broker)

	err := w.Work(context.Background(), makeJob(2, confirmation()))
	require.ErrorIs(t, err, broker)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestNotificationWorker_BadMessageCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	w := worker.NewNotificationWorker(sender, nil)

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(serrors.With(serrors.ErrBadRequest, "unknown template"))

	err := w.Work(context.Background(), makeJob(3, confirmation()))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)

	msg := confirmation()
	msg.To = ""
	err = w.Work(context.Background(), makeJob(4, msg))
	require.ErrorAs(t, err, &cancelErr)
}

func TestNotificationWorker_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	w := worker.NewNotificationWorker(sender, nil)

	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(serrors.With(serrors.ErrRateLimited, "slow down"))

	err := w.Work(context.Background(), makeJob(5, confirmation()))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Positive(t, snoozeErr.Duration)
}

func TestWorkers_RegistersNotificationJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	require.NotNil(t, worker.Workers(mocknotify.NewMockSender(ctrl), notify.Linkers{}))
}

func TestNotificationWorker_LinksBeforeSending(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocknotify.NewMockSender(ctrl)
	queued := notify.Message{
		Template: notify.TemplatePasswordReset,
		TenantID: "t-1",
		To:       "ada@example.com",
		Ref:      "u-1",
		Data:     map[string]string{"name": "Ada"},
	}
	linker := notify.LinkerFunc(func(_ context.Context, msg notify.Message) (notify.Message, error) {
		require.Equal(t, "u-1", msg.Ref)

		return msg.With("token", "secret"), nil
	})
	w := worker.NewNotificationWorker(sender, linker)

	sender.EXPECT().Send(gomock.Any(), queued.With("token", "secret")).Return(nil)
	job := makeJob(6, queued)
	require.NoError(t, w.Work(context.Background(), job))
	require.NotContains(t, job.Args.Message.Data, "token")
}

func TestNotificationWorker_LinkErrors(t *testing.T) {
	cases := map[string]struct {
		err    error
		cancel bool
	}{
		"user gone":       {err: serrors.With(serrors.ErrNotFound, "user not found"), cancel: true},
		"malformed ref":   {err: serrors.With(serrors.ErrBadRequest, "malformed reference"), cancel: true},
		"database outage": {err: errors.New("connection refused")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mocknotify.NewMockSender(ctrl)
			w := worker.NewNotificationWorker(sender, notify.LinkerFunc(
				func(context.Context, notify.Message) (notify.Message, error) { return notify.Message{}, tc.err }))

			err := w.Work(context.Background(), makeJob(7, confirmation()))
			require.ErrorIs(t, err, tc.err)
			var cancelErr *river.JobCancelError
			require.Equal(t, tc.cancel, errors.As(err, &cancelErr))
		})
	}
}
