package owner

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner.repository: owner not found")

	// ErrDuplicateTaxID возвращается, когда ИНН уже зарегистрирован
	ErrDuplicateTaxID = errors.New("owner.repository: tax id already registered")

	// ErrDuplicateEmail возвращается, когда email уже зарегистрирован
	ErrDuplicateEmail = errors.New("owner.repository: email already registered")

	ErrBuildQuery = errors.New("owner.repository: failed to build query")
	ErrExecQuery  = errors.New("owner.repository: failed to execute query")
	ErrScanRow    = errors.New("owner.repository: failed to scan row")
)
