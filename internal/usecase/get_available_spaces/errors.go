package get_available_spaces

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = fmt.Errorf("%w: get_available_spaces: parking meter not found", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_available_spaces: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_spaces: internal error")
)
