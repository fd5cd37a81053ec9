// Package kafka publishes status-change events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/lifecycle"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// statusChangedMessage is the JSON value of every published record.
type statusChangedMessage struct {
	Kind       string    `json:"kind"`
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// StatusChangedPublisher implements ports.EventPublisher. Records are keyed by
// entity id so the changes of one entity stay ordered within a partition.
type StatusChangedPublisher struct {
	writer messageWriter
}

func NewStatusChangedPublisher(writer messageWriter) *StatusChangedPublisher {
	return &StatusChangedPublisher{writer: writer}
}

// WriterBatchTimeout bounds how long Publish waits for a batch to fill.
// Publish runs on the request path right after commit.
const WriterBatchTimeout = 10 * time.Millisecond

// NewWriter creates a writer for topic that hashes keys onto partitions.
func NewWriter(brokers string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           WriterBatchTimeout,
	}
}

// Publish writes all events in a single batch.
func (p *StatusChangedPublisher) Publish(ctx context.Context, events ...lifecycle.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(statusChangedMessage{
			Kind:       event.Kind.String(),
			ID:         event.ID.String(),
			From:       event.From,
			To:         event.To,
			OccurredAt: event.OccurredAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("marshal %s status change: %w", event.Kind, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(event.ID.String()),
			Value: value,
			Time:  event.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d status changes: %w", len(msgs), err)
	}
	return nil
}

func (p *StatusChangedPublisher) Close() error {
	return p.writer.Close()
}
