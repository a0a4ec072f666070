package tickets

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrTicketNotFound возвращается, когда тикет не найден
	ErrTicketNotFound = fmt.Errorf("%w: ticket not found", domain.ErrNotFound)

	// ErrAlreadySettledOrCancelled возвращается при попытке изменить завершённый тикет
	ErrAlreadySettledOrCancelled = fmt.Errorf("%w: ticket is already paid or cancelled", domain.ErrInvalidState)

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = fmt.Errorf("%w: ticket has already been cancelled", domain.ErrInvalidState)

	// ErrGracePeriodExpired возвращается, когда с начала парковки прошло 5 минут или больше
	ErrGracePeriodExpired = fmt.Errorf("%w: ticket cannot be cancelled, grace period reached", domain.ErrInvalidState)

	// ErrNoTicketsForVehicle возвращается, когда у автомобиля нет ни одного тикета
	ErrNoTicketsForVehicle = fmt.Errorf("%w: no ticket found for vehicle", domain.ErrNotFound)

	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = domain.ErrInvalidRange

	// ErrInvalidStatus возвращается при недопустимом статусе оплаты
	ErrInvalidStatus = fmt.Errorf("%w: invalid payment status", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: tickets: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tickets.service: internal error")
)
