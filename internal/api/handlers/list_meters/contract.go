package list_meters

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters/models"
)

type MeterService interface {
	ListByLocality(ctx context.Context, req models.LocalityRequest, page domain.Page) (*models.MeterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
