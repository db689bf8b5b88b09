package deliveryconfig

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("deliveryconfig.service: internal error")
)
