package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter returns a writer producing to topic. Messages with the same key
// land in the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// KafkaPublisher publishes pereval events to Kafka keyed by pereval id
type KafkaPublisher struct {
	writer KafkaWriter
}

func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes the event as JSON. The event type is also set as a header.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.PerevalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PerevalID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	logger.Log.Infow("event published to Kafka", "event_id", event.EventID, "type", event.Type)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
