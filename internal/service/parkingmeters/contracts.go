package parkingmeters

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/addressservice"
)

// MeterRepository интерфейс репозитория паркоматов
type MeterRepository interface {
	Create(ctx context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingMeter, error)
	ExistsByZipCode(ctx context.Context, zipCode string, excludeID *int64) (bool, error)
	Update(ctx context.Context, m *domain.ParkingMeter) (*domain.ParkingMeter, error)
	GetByLocality(ctx context.Context, filter domain.LocalityFilter, page *domain.Page) ([]*domain.ParkingMeter, error)
}

// AddressServiceClient интерфейс клиента сервиса адресов
type AddressServiceClient interface {
	GetAddress(ctx context.Context, zipCode string) (*addressservice.Address, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
