// Package events publishes domain events to a message broker. Notification
// records are the source of truth; published events let downstream consumers
// (push, e-mail) react without polling the database.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/tbourn/go-video-backend/internal/config"
)

// NotificationEvent is the payload published for each stored notification.
type NotificationEvent struct {
	NotificationID string  `json:"notification_id"`
	UserID         string  `json:"user_id"`
	Type           string  `json:"type"`
	Message        string  `json:"message"`
	RelatedUserID  *string `json:"related_user_id,omitempty"`
	RelatedVideoID *string `json:"related_video_id,omitempty"`
	ActionURL      string  `json:"action_url,omitempty"`
	Timestamp      int64   `json:"timestamp"`
}

// Publisher emits notification events.
type Publisher interface {
	PublishNotification(ctx context.Context, ev NotificationEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func NewPublisher(cfg config.KafkaConfig, logger zerolog.Logger) Publisher {
	if len(cfg.Brokers) == 0 {
		logger.Info().Msg("kafka disabled; notification events are not published")
		return Nop{}
	}
	return NewKafkaPublisher(cfg, logger)
}

// KafkaPublisher writes events to a Kafka topic keyed by user ID, so one
// user's events stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger zerolog.Logger
}

// NewKafkaPublisher creates a writer for cfg.NotificationsTopic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.NotificationsTopic).
		Msg("kafka publisher initialized")

	return &KafkaPublisher{writer: writer, topic: cfg.NotificationsTopic, logger: logger}
}

// PublishNotification marshals ev and writes it synchronously.
func (p *KafkaPublisher) PublishNotification(ctx context.Context, ev NotificationEvent) error {
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().Unix()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal notification event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(ev.UserID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write notification event: %w", err)
	}

	p.logger.Debug().
		Str("notification_id", ev.NotificationID).
		Str("user_id", ev.UserID).
		Msg("notification event published")
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}

// Nop discards every event.
type Nop struct{}

// PublishNotification does nothing.
func (Nop) PublishNotification(context.Context, NotificationEvent) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

// Recorder keeps published events in memory. Err, when set, is returned
// from every publish.
type Recorder struct {
	Err error

	mu     sync.Mutex
	events []NotificationEvent
}

// PublishNotification records ev.
func (r *Recorder) PublishNotification(_ context.Context, ev NotificationEvent) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Close does nothing.
func (r *Recorder) Close() error { return nil }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []NotificationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]NotificationEvent(nil), r.events...)
}
