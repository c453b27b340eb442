package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует доменные события в RabbitMQ
// Публикация best-effort: ошибки логируются и возвращаются, но вызывающий
// код не должен прерывать основной поток обработки запроса из-за них
type Publisher struct {
	url     string
	enabled bool
	log     Logger
}

// NewPublisher создает издатель событий
// При enabled=false все публикации превращаются в no-op
func NewPublisher(url string, enabled bool, log Logger) *Publisher {
	return &Publisher{
		url:     url,
		enabled: enabled,
		log:     log,
	}
}

// PublishBookingConfirmed публикует событие подтверждения бронирования
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	return p.publish(ctx, QueueBookingConfirmed, event)
}

// PublishBookingCancelled публикует событие отмены бронирования
func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, QueueBookingCancelled, event)
}

// publish сериализует событие и отправляет его в durable очередь
// Соединение открывается на каждую публикацию: частота событий низкая,
// а переживание обрывов соединения получается бесплатно
func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	if !p.enabled {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal %s event: %v", queue, err)
		return fmt.Errorf("events: marshal %s: %w", queue, err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("events: rabbitmq dial failed: %v", err)
		return fmt.Errorf("events: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("events: rabbitmq channel open failed: %v", err)
		return fmt.Errorf("events: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Идемпотентное объявление durable очереди
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Error("events: queue declare %s failed: %v", queue, err)
		return fmt.Errorf("events: declare queue %s: %w", queue, err)
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.log.Error("events: publish to %s failed: %v", queue, err)
		return fmt.Errorf("events: publish %s: %w", queue, err)
	}

	p.log.Info("events: published %s event", queue)
	return nil
}
