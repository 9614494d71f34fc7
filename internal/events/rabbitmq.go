package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

//go:generate mockgen -source=rabbitmq.go -destination=rabbitmq_mock.go -package=events

// AMQPChannel is the subset of *amqp.Channel used for publishing.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes pereval events to a durable queue
type RabbitMQPublisher struct {
	conn  *amqp.Connection
	ch    AMQPChannel
	queue string
}

// DialRabbitMQ connects to url, opens a channel and declares the durable queue.
func DialRabbitMQ(url, queue string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	logger.Log.Infow("rabbitmq queue declared", "queue", q.Name, "messages", q.Messages)

	p := NewRabbitMQPublisher(ch, q.Name)
	p.conn = conn
	return p, nil
}

// NewRabbitMQPublisher publishes through an already opened channel to the default exchange.
func NewRabbitMQPublisher(ch AMQPChannel, queue string) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch, queue: queue}
}

// Publish sends the event as a persistent JSON message.
func (p *RabbitMQPublisher) Publish(ctx context.Context, event models.PerevalEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for RabbitMQ", "event_id", event.EventID, "error", err)
		return err
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return err
	}
	logger.Log.Infow("event published to RabbitMQ", "event_id", event.EventID, "type", event.Type)
	return nil
}

// Close closes the channel and, when owned, the connection.
func (p *RabbitMQPublisher) Close() error {
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			logger.Log.Warnw("failed to close rabbitmq channel", "error", err)
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
