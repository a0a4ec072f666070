package get_earnings_ranking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/earnings/models"
)

type EarningsService interface {
	RankByEarnings(ctx context.Context, begin time.Time, end *time.Time, page domain.Page) (*models.RankingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
