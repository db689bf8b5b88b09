package estimate_delivery

import "errors"

var (
	// ErrAddressNotFound возвращается, когда геокодер не нашёл адрес
	ErrAddressNotFound = errors.New("address not found")

	// ErrGeocoderUnavailable возвращается при недоступности геокодера
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")

	// ErrSuperseded возвращается, когда результат геокодирования устарел:
	// пока запрос выполнялся, адрес был изменён ещё раз
	ErrSuperseded = errors.New("estimate superseded by a newer request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
