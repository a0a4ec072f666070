package ticket

import "errors"

var (
	// ErrTicketNotFound возвращается, когда тикет не найден
	ErrTicketNotFound = errors.New("ticket.repository: ticket not found")

	// ErrPendingTicketExists возвращается, когда у автомобиля уже есть активный тикет
	ErrPendingTicketExists = errors.New("ticket.repository: vehicle already has a pending ticket")

	// ErrStatusMismatch возвращается, когда статус тикета изменился до обновления
	ErrStatusMismatch = errors.New("ticket.repository: ticket status mismatch")

	// ErrSerialization возвращается, когда сериализуемая транзакция конфликтует с параллельной
	ErrSerialization = errors.New("ticket.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ticket.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ticket.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ticket.repository: failed to scan row")

	// ErrSnapshot возвращается при ошибке (де)сериализации снимков
	ErrSnapshot = errors.New("ticket.repository: failed to encode snapshot")
)
