package get_meter

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

type MeterService interface {
	GetByID(ctx context.Context, id int64) (*models.MeterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
