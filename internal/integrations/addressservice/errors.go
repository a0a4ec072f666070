package addressservice

import "errors"

var (
	// ErrZipCodeNotFound возвращается, когда сервис не знает такой индекс
	ErrZipCodeNotFound = errors.New("address service: zip code not found")

	// ErrInvalidZipCode возвращается для индекса недопустимого формата
	ErrInvalidZipCode = errors.New("address service: invalid zip code")

	// ErrInternal возвращается при внутренних ошибках клиента (запрос не был отправлен или не дошёл)
	ErrInternal = errors.New("address service client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("address service client: invalid response")
)
