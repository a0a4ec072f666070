package vehicles

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = fmt.Errorf("%w: vehicle not found", domain.ErrNotFound)

	// ErrOwnerNotFound возвращается, когда владелец автомобиля не существует
	ErrOwnerNotFound = fmt.Errorf("%w: owner not found", domain.ErrNotFound)

	// ErrDuplicateLicensePlate возвращается, когда автомобиль с таким номером уже зарегистрирован
	ErrDuplicateLicensePlate = fmt.Errorf("%w: vehicle with this license plate already exists", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: vehicle: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles.service: internal error")
)
