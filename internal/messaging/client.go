package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the subset of *amqp091.Channel the client uses
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	Close() error
}

// EventHandler processes one decoded event. A returned error requeues the
// delivery.
type EventHandler func(ctx context.Context, event models.TransactionEvent) error

// Client publishes and consumes transaction events on a durable direct
// exchange
type Client struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
	queue    string
}

func NewClient(cfg config.AMQPConfig) (*Client, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := setup(channel, cfg); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Client{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
	}, nil
}

func setup(channel *amqp091.Channel, cfg config.AMQPConfig) error {
	if err := channel.ExchangeDeclare(
		cfg.Exchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if _, err := channel.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(cfg.Queue, RoutingKeyTransactionCreated, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	if cfg.Prefetch > 0 {
		if err := channel.Qos(cfg.Prefetch, 0, false); err != nil {
			return fmt.Errorf("failed to set prefetch: %w", err)
		}
	}
	return nil
}

// PublishTransactionCreated sends event as a persistent JSON message
func (c *Client) PublishTransactionCreated(ctx context.Context, event models.TransactionEvent) error {
	body, err := EncodeTransactionEvent(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := c.channel.PublishWithContext(ctx,
		c.exchange,
		RoutingKeyTransactionCreated,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID.String(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("failed to publish transaction event: %w", err)
	}

	slog.DebugContext(ctx, "Published transaction event",
		"event_id", event.EventID,
		"transaction_id", event.TransactionID,
		"exchange", c.exchange,
	)
	return nil
}

// Consume delivers events to handler with manual acknowledgement until ctx
// ends or the broker closes the channel
func (c *Client) Consume(ctx context.Context, handler EventHandler) error {
	deliveries, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming transaction events", "queue", c.queue)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping event consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			HandleDelivery(ctx, delivery, handler)
		}
	}
}

// HandleDelivery settles one delivery: a malformed payload is dropped, a
// handler error requeues, anything else is acknowledged
func HandleDelivery(ctx context.Context, delivery amqp091.Delivery, handler EventHandler) {
	event, err := DecodeTransactionEvent(delivery.Body)
	if err != nil {
		slog.ErrorContext(ctx, "Dropping malformed transaction event",
			"message_id", delivery.MessageId,
			"error", err,
		)
		settle(ctx, delivery.Nack(false, false))
		return
	}

	if err := handler(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to handle transaction event, requeueing",
			"event_id", event.EventID,
			"transaction_id", event.TransactionID,
			"user_id", event.UserID,
			"error", err,
		)
		settle(ctx, delivery.Nack(false, true))
		return
	}

	settle(ctx, delivery.Ack(false))
}

func settle(ctx context.Context, err error) {
	if err != nil {
		slog.ErrorContext(ctx, "Failed to settle delivery", "error", err)
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
