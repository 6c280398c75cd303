package events

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tbourn/go-video-backend/internal/config"
)

func TestNewPublisher_NopWithoutBrokers(t *testing.T) {
	p := NewPublisher(config.KafkaConfig{}, zerolog.Nop())
	if _, ok := p.(Nop); !ok {
		t.Fatalf("expected Nop publisher, got %T", p)
	}
	if err := p.PublishNotification(context.Background(), NotificationEvent{UserID: "u1"}); err != nil {
		t.Fatalf("nop publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("nop close: %v", err)
	}
}

func TestNewPublisher_KafkaWithBrokers(t *testing.T) {
	p := NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, NotificationsTopic: "notifications"}, zerolog.Nop())
	kp, ok := p.(*KafkaPublisher)
	if !ok {
		t.Fatalf("expected *KafkaPublisher, got %T", p)
	}
	if kp.topic != "notifications" || kp.writer.Addr.String() != "localhost:9092" {
		t.Fatalf("unexpected writer config topic=%q addr=%q", kp.topic, kp.writer.Addr.String())
	}
	_ = kp.Close()
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_ = r.PublishNotification(context.Background(), NotificationEvent{UserID: "u1", Type: "system"})
	if evs := r.Events(); len(evs) != 1 || evs[0].UserID != "u1" {
		t.Fatalf("unexpected events %+v", evs)
	}
	r.Err = errors.New("down")
	if err := r.PublishNotification(context.Background(), NotificationEvent{}); err == nil {
		t.Fatalf("expected injected error")
	}
}
