package meter

import "errors"

var (
	// ErrMeterNotFound возвращается, когда паркомат не найден
	ErrMeterNotFound = errors.New("meter.repository: parking meter not found")

	// ErrDuplicateZipCode возвращается, когда паркомат с таким индексом уже существует
	ErrDuplicateZipCode = errors.New("meter.repository: zip code already registered")

	// ErrVersionConflict возвращается, когда версия паркомата изменилась с момента чтения
	ErrVersionConflict = errors.New("meter.repository: version conflict")

	// ErrSerialization возвращается, когда сериализуемая транзакция конфликтует с параллельной
	ErrSerialization = errors.New("meter.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("meter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("meter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("meter.repository: failed to scan row")
)
