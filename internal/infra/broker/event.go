// Package broker описывает события жизненного цикла тикета, которые публикуются во внешний брокер
package broker

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// EventType тип события тикета
type EventType string

const (
	EventTicketCreated   EventType = "ticket.created"
	EventTicketPaid      EventType = "ticket.paid"
	EventTicketCancelled EventType = "ticket.cancelled"
)

// TicketEvent сообщение о смене состояния тикета
type TicketEvent struct {
	EventID      string    `json:"eventId"`
	Type         EventType `json:"type"`
	TicketID     int64     `json:"ticketId"`
	MeterID      int64     `json:"meterId"`
	VehicleID    int64     `json:"vehicleId"`
	LicensePlate string    `json:"licensePlate"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewTicketEvent собирает событие по текущему состоянию тикета
func NewTicketEvent(eventType EventType, t *domain.Ticket, occurredAt time.Time) TicketEvent {
	return TicketEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		TicketID:     t.ID,
		MeterID:      t.Meter.ID,
		VehicleID:    t.Vehicle.ID,
		LicensePlate: t.Vehicle.LicensePlate,
		Status:       string(t.PaymentStatus),
		Amount:       t.TotalAmountCharged,
		OccurredAt:   occurredAt.UTC(),
	}
}

// Key ключ партиционирования: события одного тикета попадают в одну партицию
func (e TicketEvent) Key() string {
	return strconv.FormatInt(e.TicketID, 10)
}

// Publisher издатель событий тикетов
type Publisher interface {
	Publish(ctx context.Context, event TicketEvent) error
	Close() error
}

// NoopPublisher используется, когда брокер выключен в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TicketEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
