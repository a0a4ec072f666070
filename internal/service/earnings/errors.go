package earnings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = fmt.Errorf("%w: parking meter not found", domain.ErrNotFound)

	// ErrMissingFilter возвращается, когда не указан ни город, ни район
	ErrMissingFilter = fmt.Errorf("%w: at least one filter (city or neighborhood) must be provided", domain.ErrInvalidInput)

	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: earnings: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("earnings.service: internal error")
)
