package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"studiohub/pkg/logger"
	"studiohub/pkg/notify"
	mockstorage "studiohub/pkg/storage/mock"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)

	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestKafkaSender(t *testing.T) {
	w := &fakeWriter{}
	sender := notify.NewKafkaSenderWithWriter(w, "notifications")

	msg := notify.Message{
		Template: notify.TemplateOrderConfirmation,
		TenantID: "tenant-1",
		To:       "client@example.com",
		Data:     map[string]string{"orderNumber": "ORD-1"},
	}
	require.NoError(t, sender.Send(context.Background(), msg))

	require.Len(t, w.msgs, 1)
	got := w.msgs[0]
	require.Equal(t, "notifications", got.Topic)
	require.Equal(t, []byte("tenant-1"), got.Key)
	require.Equal(t, "template", got.Headers[0].Key)
	require.Equal(t, []byte("order_confirmation"), got.Headers[0].Value)

	var decoded notify.Message
	require.NoError(t, json.Unmarshal(got.Value, &decoded))
	require.Equal(t, msg, decoded)

	w.err = errors.New("leader not available")
	err := sender.Send(context.Background(), msg)
	require.ErrorIs(t, err, w.err)

	require.NoError(t, sender.Close())
	require.True(t, w.closed)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	require.NoError(t, notify.LogSender{}.Send(ctx, notify.Message{
		Template: notify.TemplateInvitation,
		To:       "new@example.com",
	}))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "invitation", logs.All()[0].ContextMap()["template"])
}

func TestEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockAllStorage(ctrl)
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	msg := notify.Message{Template: notify.TemplatePasswordReset, TenantID: "t", To: "a@example.com"}

	jobs.EXPECT().AddJob(ctx, notify.JobArgs{Message: msg}, gomock.Nil()).Return(true, nil)
	notify.Enqueue(ctx, jobs, msg)
	require.Equal(t, 0, logs.Len())

	jobs.EXPECT().AddJob(ctx, gomock.Any(), gomock.Nil()).Return(false, errors.New("db gone"))
	require.NotPanics(t, func() { notify.Enqueue(ctx, jobs, msg) })
	require.Equal(t, 1, logs.FilterMessage("could not enqueue notification").Len())
}

func TestLinkers(t *testing.T) {
	ctx := context.Background()
	linkers := notify.Linkers{
		notify.TemplatePasswordReset: notify.LinkerFunc(func(_ context.Context, msg notify.Message) (notify.Message, error) {
			return msg.With("token", "minted-for-"+msg.Ref), nil
		}),
	}

	queued := notify.Message{
		Template: notify.TemplatePasswordReset,
		To:       "a@example.com",
		Ref:      "user-1",
		Data:     map[string]string{"name": "Ada"},
	}
	linked, err := linkers.Link(ctx, queued)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"name": "Ada", "token": "minted-for-user-1"}, linked.Data)
	require.NotContains(t, queued.Data, "token", "linking never writes into the queued message")

	other := notify.Message{Template: notify.TemplateOrderConfirmation, To: "a@example.com"}
	passed, err := linkers.Link(ctx, other)
	require.NoError(t, err)
	require.Equal(t, other, passed)
}
