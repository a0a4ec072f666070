package create_ticket

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
)

// TicketRepository интерфейс репозитория тикетов
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	CountByFilter(ctx context.Context, filter domain.TicketFilter) (int, error)
}

// MeterRepository интерфейс репозитория паркоматов
type MeterRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.ParkingMeter, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
}

// EventPublisher интерфейс издателя событий тикетов
type EventPublisher interface {
	Publish(ctx context.Context, event broker.TicketEvent) error
}

// Metrics счётчик переходов тикетов
type Metrics interface {
	IncTicketTransition(status string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
