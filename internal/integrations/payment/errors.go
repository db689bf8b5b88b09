package payment

import "errors"

var (
	// ErrRejected возвращается при бизнес-отказе шлюза (HTTP 400)
	// Дословное сообщение шлюза доступно через *RejectedError
	ErrRejected = errors.New("payment client: rejected by gateway")

	// ErrUnavailable возвращается при недоступности шлюза (сеть, таймаут)
	ErrUnavailable = errors.New("payment client: gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("payment client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payment client: internal error")
)

// RejectedError бизнес-отказ шлюза с дословным сообщением для пользователя
// (например, "доставка на сегодня уже оформлена")
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "payment client: rejected by gateway: " + e.Message
}

// Unwrap позволяет проверять отказ через errors.Is(err, ErrRejected)
func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
