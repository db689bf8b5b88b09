package timeservice

import "errors"

var (
	// ErrUnavailable возвращается при недоступности источника времени
	ErrUnavailable = errors.New("timeservice client: unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе источника
	ErrInvalidResponse = errors.New("timeservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("timeservice client: internal error")
)
