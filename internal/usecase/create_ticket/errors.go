package create_ticket

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = fmt.Errorf("%w: create_ticket: vehicle not found", domain.ErrNotFound)

	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = fmt.Errorf("%w: create_ticket: parking meter not found", domain.ErrNotFound)

	// ErrMeterClosed возвращается, когда паркомат уже закрыт по расписанию
	ErrMeterClosed = fmt.Errorf("%w: create_ticket: parking meter is closed", domain.ErrInvalidState)

	// ErrVehicleAlreadyParked возвращается, когда у автомобиля уже есть активный тикет
	ErrVehicleAlreadyParked = fmt.Errorf("%w: create_ticket: vehicle already has a pending ticket", domain.ErrConflict)

	// ErrMeterFull возвращается, когда все места паркомата заняты
	ErrMeterFull = fmt.Errorf("%w: create_ticket: no available spaces", domain.ErrConflict)

	// ErrConcurrentCreation возвращается, когда параллельная транзакция помешала создать тикет.
	// Запрос можно повторить.
	ErrConcurrentCreation = fmt.Errorf("%w: create_ticket: concurrent update, retry", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_ticket: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_ticket: internal error")
)
