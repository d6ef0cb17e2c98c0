// Package notify publishes outbound notifications (e-mails rendered by the
// mailer service) to Kafka.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"studiohub/pkg/logger"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Template names the message the mailer renders.
type Template string

const (
	TemplateOrderConfirmation  Template = "order_confirmation"
	TemplateOrderStatusChanged Template = "order_status_changed"
	TemplateInvitation         Template = "invitation"
	TemplatePasswordReset      Template = "password_reset"
)

// Message is one notification for one recipient.
type Message struct {
	Template Template `json:"template"`
	TenantID string   `json:"tenantId"`
	To       string   `json:"to"`
	// Ref is the id of the user or order the message is about. Linkers use it
	// to fill in secrets that are never queued.
	Ref  string            `json:"ref,omitempty"`
	Data map[string]string `json:"data,omitempty"`
}

// With returns a copy of m with key set in its data.
func (m Message) With(key, value string) Message {
	data := make(map[string]string, len(m.Data)+1)
	for k, v := range m.Data {
		data[k] = v
	}
	data[key] = value
	m.Data = data

	return m
}

//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go Sender
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Writer is the part of *kafka.Writer the sender uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSender writes messages to a topic keyed by tenant, so one studio's
// notifications keep their order.
type KafkaSender struct {
	writer Writer
	topic  string
}

// Options configure a KafkaSender.
type Options struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
}

func NewKafkaSender(opts Options) *KafkaSender {
	batchTimeout := opts.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = 10 * time.Millisecond
	}

	return NewKafkaSenderWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
		RequiredAcks: kafka.RequireAll,
	}, opts.Topic)
}

// NewKafkaSenderWithWriter sends through w. The writer must not have a
// topic of its own.
func NewKafkaSenderWithWriter(w Writer, topic string) *KafkaSender {
	return &KafkaSender{writer: w, topic: topic}
}

func (s *KafkaSender) Send(ctx context.Context, msg Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}

	if err := s.writer.WriteMessages(ctx, kafka.Message{
		Topic: s.topic,
		Key:   []byte(msg.TenantID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "template", Value: []byte(msg.Template)},
		},
	}); err != nil {
		return fmt.Errorf("could not publish %s notification: %w", msg.Template, err)
	}

	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close() //nolint: wrapcheck
}

// LogSender only logs messages. It is used when no broker is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	logger.Info(ctx, "notification",
		zap.String("template", string(msg.Template)),
		zap.String("tenantID", msg.TenantID),
		zap.String("to", msg.To))

	return nil
}
