package vehicle

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrDuplicateLicensePlate возвращается, когда номер уже зарегистрирован
	ErrDuplicateLicensePlate = errors.New("vehicle.repository: license plate already registered")

	// ErrOwnerNotFound возвращается, когда владелец по owner_id не существует
	ErrOwnerNotFound = errors.New("vehicle.repository: owner not found")

	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")
	ErrExecQuery  = errors.New("vehicle.repository: failed to execute query")
	ErrScanRow    = errors.New("vehicle.repository: failed to scan row")
)
