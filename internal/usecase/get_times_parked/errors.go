package get_times_parked

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = fmt.Errorf("%w: get_times_parked: parking meter not found", domain.ErrNotFound)

	// ErrInvalidRange возвращается, когда начальная дата позже конечной
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_times_parked: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_times_parked: internal error")
)
