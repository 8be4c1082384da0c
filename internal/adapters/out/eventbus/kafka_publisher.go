// Package eventbus delivers domain events after their transaction commits.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"orderwizard/internal/core/domain/model/draft"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	source      = "orderwizard"
	specVersion = "1.0"
	contentType = "application/json"
)

// Envelope is the message body: a CloudEvents-style wrapper around the event.
type Envelope struct {
	SpecVersion string            `json:"specversion"`
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Source      string            `json:"source"`
	Subject     string            `json:"subject"`
	Time        time.Time         `json:"time"`
	Data        draft.DomainEvent `json:"data"`
}

func newEnvelope(e draft.DomainEvent, now time.Time) Envelope {
	return Envelope{
		SpecVersion: specVersion,
		ID:          uuid.NewString(),
		Type:        e.EventName(),
		Source:      source,
		Subject:     e.AggregateID().String(),
		Time:        now.UTC(),
		Data:        e,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig configures the Kafka writer.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
}

// KafkaPublisher writes events synchronously to one topic, keyed by aggregate
// id so the events of a draft stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
	logger *slog.Logger
}

func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 10 * time.Millisecond
	}
	if cfg.RequiredAcks == 0 {
		cfg.RequiredAcks = int(kafka.RequireAll)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        false,
	}
	return newKafkaPublisher(writer, cfg.Topic)
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		now:    time.Now,
		logger: slog.Default().With("component", "kafka_publisher", "topic", topic),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...draft.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		env := newEnvelope(e, p.now())
		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal %s event: %w", env.Type, err)
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(env.Subject),
			Value: value,
			Headers: []kafka.Header{
				{Key: "ce-specversion", Value: []byte(env.SpecVersion)},
				{Key: "ce-type", Value: []byte(env.Type)},
				{Key: "ce-source", Value: []byte(env.Source)},
				{Key: "ce-id", Value: []byte(env.ID)},
				{Key: "ce-time", Value: []byte(env.Time.Format(time.RFC3339))},
				{Key: "content-type", Value: []byte(contentType)},
			},
			Time: env.Time,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d events to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.Debug("events published", "count", len(msgs))
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
