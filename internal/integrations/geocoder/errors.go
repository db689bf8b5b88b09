package geocoder

import "errors"

var (
	// ErrAddressNotFound возвращается, когда провайдер не нашёл адрес
	ErrAddressNotFound = errors.New("geocoder client: address not found")

	// ErrUnavailable возвращается при недоступности провайдера (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("geocoder client: provider unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("geocoder client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")
)
