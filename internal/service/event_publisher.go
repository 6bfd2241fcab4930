package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/queue"
)

const letterQueueName = "letter.logged"

// EventPublisher pushes audit events to RabbitMQ.  Publishing is strictly
// best-effort: errors are logged and returned so callers can ignore them
// without failing the request that produced the event.
type EventPublisher struct {
	url string
	log *zap.Logger
}

// NewEventPublisher returns a publisher for the broker at url, or nil when
// url is empty (publishing disabled).
func NewEventPublisher(url string, log *zap.Logger) *EventPublisher {
	if url == "" {
		return nil
	}
	return &EventPublisher{url: url, log: log}
}

// PublishLetterLogged sends a LetterLoggedEvent to the letter.logged
// queue.  The queue is declared durable and messages are persistent, so an
// audit consumer can catch up after a broker restart.
func (p *EventPublisher) PublishLetterLogged(ctx context.Context, ev queue.LetterLoggedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("amqp dial failed", zap.Error(err))
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("amqp channel open failed", zap.Error(err))
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(letterQueueName, true, false, false, false, nil); err != nil {
		p.log.Warn("amqp queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", letterQueueName, false, false, pub); err != nil {
		p.log.Warn("amqp publish failed", zap.Error(err))
		return err
	}
	return nil
}
