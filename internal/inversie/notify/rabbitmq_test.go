package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	data := `{"decisionId":"01HZX"}`

	n := domain.Notification{
		ID:        "01HZY",
		UserID:    "01HZU",
		Type:      domain.NotificationDecisionApproved,
		Title:     "Beslissing goedgekeurd",
		Message:   "Je bewindvoerder heeft 'Winterjas' goedgekeurd.",
		Data:      &data,
		CreatedAt: created,
	}

	msg, err := newPublishing(n)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "01HZY", msg.MessageId)
	assert.Equal(t, "decision_approved", msg.Type)
	assert.Equal(t, created, msg.Timestamp)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &ev))
	assert.Equal(t, "01HZU", ev["userId"])
	assert.Equal(t, map[string]any{"decisionId": "01HZX"}, ev["data"])
	assert.Equal(t, "2025-03-10T09:30:00Z", ev["createdAt"])
}

func TestNewPublishingWithoutData(t *testing.T) {
	msg, err := newPublishing(domain.Notification{ID: "1", Type: domain.NotificationMoneyRequestDenied})
	require.NoError(t, err)
	assert.NotContains(t, string(msg.Body), `"data"`)
}

func TestNewPublishingRejectsBrokenData(t *testing.T) {
	bad := "{not json"
	_, err := newPublishing(domain.Notification{ID: "1", Data: &bad})
	assert.Error(t, err)
}

func TestPublishWaitsForConfirm(t *testing.T) {
	ctx := context.Background()
	n := domain.Notification{ID: "01HZY", Type: domain.NotificationDecisionDenied}

	t.Run("ack", func(t *testing.T) {
		var sent []amqp.Publishing
		p := &RabbitPublisher{publish: func(_ context.Context, msg amqp.Publishing) (bool, error) {
			sent = append(sent, msg)
			return true, nil
		}}

		require.NoError(t, p.Publish(ctx, n))
		require.Len(t, sent, 1)
		assert.Equal(t, "01HZY", sent[0].MessageId)
	})

	t.Run("nack", func(t *testing.T) {
		p := &RabbitPublisher{publish: func(context.Context, amqp.Publishing) (bool, error) {
			return false, nil
		}}

		err := p.Publish(ctx, n)
		assert.ErrorIs(t, err, ErrNacked)
	})

	t.Run("confirm lost", func(t *testing.T) {
		p := &RabbitPublisher{publish: func(context.Context, amqp.Publishing) (bool, error) {
			return false, amqp.ErrClosed
		}}

		err := p.Publish(ctx, n)
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("broken data never reaches the broker", func(t *testing.T) {
		called := false
		p := &RabbitPublisher{publish: func(context.Context, amqp.Publishing) (bool, error) {
			called = true
			return true, nil
		}}

		bad := "{"
		broken := n
		broken.Data = &bad
		assert.Error(t, p.Publish(ctx, broken))
		assert.False(t, called)
	})
}
