package owners

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// OwnerRepository интерфейс репозитория владельцев
type OwnerRepository interface {
	Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
