package get_available_spaces

import (
	"context"

	getAvailableSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spaces"
)

type GetAvailableSpacesUseCase interface {
	Execute(ctx context.Context, req *getAvailableSpaces.Request) (*getAvailableSpaces.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
