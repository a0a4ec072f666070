package parkingmeters

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = fmt.Errorf("%w: parking meter not found", domain.ErrNotFound)

	// ErrDuplicateZipCode возвращается, когда паркомат с таким индексом уже существует
	ErrDuplicateZipCode = fmt.Errorf("%w: parking meter with this zip code already exists", domain.ErrConflict)

	// ErrVersionConflict возвращается, когда паркомат изменён после чтения клиентом
	ErrVersionConflict = fmt.Errorf("%w: parking meter was modified concurrently", domain.ErrVersionConflict)

	// ErrZipCodeNotFound возвращается, когда сервис адресов не знает индекс
	ErrZipCodeNotFound = fmt.Errorf("%w: zip code not found", domain.ErrInvalidInput)

	// ErrAddressLookupFailed возвращается, когда сервис адресов недоступен или ответил некорректно
	ErrAddressLookupFailed = fmt.Errorf("%w: address lookup failed", domain.ErrUpstreamFailure)

	// ErrMissingFilter возвращается, когда не указан ни город, ни район
	ErrMissingFilter = fmt.Errorf("%w: at least one filter (city or neighborhood) must be provided", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: parking meter: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parkingmeters.service: internal error")
)
