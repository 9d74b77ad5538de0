// Package service publishes domain events to RabbitMQ.  Errors are logged
// and returned so callers can ignore them without interrupting the request.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/watchwhatwhere/showtimes/internal/queue"
)

// ClickPublisher publishes booking-click events.
type ClickPublisher interface {
	PublishBookingClicked(ctx context.Context, ev queue.BookingClickedEvent) error
}

// AMQPPublisher dials the broker once per publish.
type AMQPPublisher struct {
	URL string
}

// NewAMQPPublisher returns a publisher for the broker at url.
func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{URL: url}
}

// PublishBookingClicked sends ev to the booking.clicked queue as a
// persistent JSON message.
func (p *AMQPPublisher) PublishBookingClicked(ctx context.Context, ev queue.BookingClickedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		slog.Error("rabbitmq: marshal event failed", "error", err)
		return err
	}

	conn, err := dial(ctx, p.URL)
	if err != nil {
		slog.Error("rabbitmq: dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Error("rabbitmq: channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.BookingClickedQueue, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	); err != nil {
		slog.Error("rabbitmq: queue declare failed", "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.BookingClickedQueue, false, false, pub); err != nil {
		slog.Error("rabbitmq: publish failed", "error", err)
		return err
	}
	return nil
}

// dialTimeout bounds the TCP connect and AMQP handshake when ctx has no
// deadline.
const dialTimeout = 30 * time.Second

// dial connects to the broker within ctx's deadline.
func dial(ctx context.Context, url string) (*amqp.Connection, error) {
	timeout := dialTimeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}

// NopPublisher discards events.  Used when publishing is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishBookingClicked(context.Context, queue.BookingClickedEvent) error {
	return nil
}
