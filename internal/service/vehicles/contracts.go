package vehicles

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
