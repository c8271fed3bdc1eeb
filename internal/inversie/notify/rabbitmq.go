// Package notify relays in-app notifications to a RabbitMQ queue so push
// and e-mail workers can pick them up.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Event is the JSON body of every published message.
type Event struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ErrNacked is returned when the broker refused a message.
var ErrNacked = errors.New("notify: broker did not acknowledge message")

// RabbitPublisher publishes notifications to a durable queue on the default
// exchange. The channel runs in confirm mode.
type RabbitPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue

	// publish sends one message and reports whether the broker acked it.
	publish func(ctx context.Context, msg amqp.Publishing) (bool, error)
}

func NewRabbitPublisher(url, queueName string) (*RabbitPublisher, error) {
	const op = "notify.NewRabbitPublisher"

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: confirm mode: %w", op, err)
	}

	p := &RabbitPublisher{conn: conn, channel: ch, queue: q}
	p.publish = p.publishConfirmed
	return p, nil
}

// Publish sends n as a persistent JSON message and waits for the broker's
// confirm. It returns nil only on an ack. The notification id doubles as the
// AMQP message id so consumers can drop redeliveries.
func (p *RabbitPublisher) Publish(ctx context.Context, n domain.Notification) error {
	const op = "notify.Publish"

	msg, err := newPublishing(n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acked, err := p.publish(ctx, msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !acked {
		return fmt.Errorf("%s: %s: %w", op, n.ID, ErrNacked)
	}
	return nil
}

func (p *RabbitPublisher) publishConfirmed(ctx context.Context, msg amqp.Publishing) (bool, error) {
	dc, err := p.channel.PublishWithDeferredConfirmWithContext(ctx, "", p.queue.Name, false, false, msg)
	if err != nil {
		return false, err
	}
	return dc.WaitContext(ctx)
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_ = p.channel.Close()
	return p.conn.Close()
}

func newPublishing(n domain.Notification) (amqp.Publishing, error) {
	ev := Event{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UTC(),
	}
	if n.Data != nil {
		if !json.Valid([]byte(*n.Data)) {
			return amqp.Publishing{}, fmt.Errorf("notification %s: data is not valid JSON", n.ID)
		}
		ev.Data = json.RawMessage(*n.Data)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.ID,
		Type:         string(n.Type),
		Timestamp:    n.CreatedAt.UTC(),
		Body:         body,
	}, nil
}
