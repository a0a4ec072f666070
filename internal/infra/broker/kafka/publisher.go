// Package kafka публикует события тикетов в топик Kafka
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
)

// ErrPublish возвращается при ошибке отправки сообщения
var ErrPublish = errors.New("kafka.publisher: failed to publish")

// batchTimeout ограничивает ожидание пачки: публикация идёт синхронно в обработке запроса
const batchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher пишет события в один топик
type Publisher struct {
	writer messageWriter
}

// NewPublisher создает издателя. Hash-балансировщик по ключу сообщения (ID тикета)
// сохраняет порядок событий одного тикета.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish отправляет событие, ключ сообщения - ID тикета
func (p *Publisher) Publish(ctx context.Context, event broker.TicketEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}

// Close сбрасывает буфер и закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
