package get_available_spaces

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// TicketRepository интерфейс репозитория тикетов
type TicketRepository interface {
	GetByFilter(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error)
}

// MeterRepository интерфейс репозитория паркоматов
type MeterRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingMeter, error)
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
