package tickets

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
)

// TicketRepository интерфейс репозитория тикетов
type TicketRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByFilter(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
	SumChargedByLicensePlate(ctx context.Context, licensePlate string) (float64, int, error)
	Transition(ctx context.Context, id int64, from, to domain.PaymentStatus, amount float64, endTime time.Time) (*domain.Ticket, error)
}

// SpentCache кэш сумм начислений по номеру автомобиля
type SpentCache interface {
	Get(ctx context.Context, licensePlate string) (float64, bool, error)
	Generation(ctx context.Context, licensePlate string) (int64, error)
	Set(ctx context.Context, licensePlate string, total float64, generation int64) error
	Invalidate(ctx context.Context, licensePlate string) error
}

// EventPublisher интерфейс издателя событий тикетов
type EventPublisher interface {
	Publish(ctx context.Context, event broker.TicketEvent) error
}

// Metrics счётчик переходов тикетов
type Metrics interface {
	IncTicketTransition(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
