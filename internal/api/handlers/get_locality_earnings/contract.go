package get_locality_earnings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
)

type EarningsService interface {
	EarningsByLocality(ctx context.Context, req models.LocalityRequest, begin time.Time, end *time.Time, page domain.Page) (*models.EarningsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
