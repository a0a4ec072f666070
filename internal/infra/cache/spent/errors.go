package spent

import "errors"

var (
	// ErrConnect возвращается, если Redis недоступен при старте
	ErrConnect = errors.New("spent.cache: failed to connect to redis")

	// ErrCache возвращается при ошибке чтения или записи кэша
	ErrCache = errors.New("spent.cache: redis command failed")

	// ErrStale возвращается из Set, если начисления изменились после чтения суммы
	ErrStale = errors.New("spent.cache: total is stale")
)
