package get_meter_earnings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
)

type EarningsService interface {
	Earnings(ctx context.Context, meterID int64, begin time.Time, end *time.Time) (*models.EarningsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
