package owners

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = fmt.Errorf("%w: owner not found", domain.ErrNotFound)

	// ErrDuplicateTaxID возвращается, когда владелец с таким ИНН уже существует
	ErrDuplicateTaxID = fmt.Errorf("%w: owner with this tax id already exists", domain.ErrConflict)

	// ErrDuplicateEmail возвращается, когда владелец с таким email уже существует
	ErrDuplicateEmail = fmt.Errorf("%w: owner with this email already exists", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: owner: invalid input data", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("owners.service: internal error")
)
