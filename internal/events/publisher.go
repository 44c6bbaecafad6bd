// Package events publishes assignment lifecycle events to Kafka so downstream
// consumers (notifications, analytics) can react to changes without polling.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Event types emitted on the assignment lifecycle.
const (
	TypeAssignmentCreated = "assignment.created"
	TypeAssignmentUpdated = "assignment.updated"
	TypeAssignmentDeleted = "assignment.deleted"
)

// Event is the message published for every successful mutation.
type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	AssignmentID uint      `json:"assignmentId"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewEvent builds an Event with a fresh id and timestamp.
func NewEvent(eventType string, assignmentID uint) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		AssignmentID: assignmentID,
		OccurredAt:   time.Now(),
	}
}

// Publisher sends lifecycle events. Publishing is best-effort from the caller's
// point of view; a failed publish never fails the request that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// KafkaPublisher writes events to a single Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

// Publish marshals the event and writes it to the topic, keyed by event id.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "could not marshal event")
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.ID),
		Value: payload,
	})
	if err != nil {
		return errors.Wrap(err, "could not write event")
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
