package get_owner

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/owners/models"
)

type OwnerService interface {
	GetByID(ctx context.Context, id int64) (*models.OwnerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
