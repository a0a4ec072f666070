package get_times_parked

import (
	"context"

	getTimesParked "github.com/m04kA/SMC-ParkingService/internal/usecase/get_times_parked"
)

type GetTimesParkedUseCase interface {
	Execute(ctx context.Context, req *getTimesParked.Request) (*getTimesParked.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
