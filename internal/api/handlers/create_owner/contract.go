package create_owner

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/owners/models"
)

type OwnerService interface {
	Create(ctx context.Context, req *models.CreateOwnerRequest) (*models.OwnerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
