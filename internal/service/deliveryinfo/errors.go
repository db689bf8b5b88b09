package deliveryinfo

import "errors"

var (
	// ErrInfoNotFound возвращается, когда данные доставки ещё не сохранялись
	ErrInfoNotFound = errors.New("deliveryinfo.service: delivery info not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("deliveryinfo.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("deliveryinfo.service: internal error")
)
