package cancel_pending_payment

import "errors"

var (
	ErrInvalidInput  = errors.New("некорректные данные запроса")
	ErrOrderNotFound = errors.New("заявка не найдена")
	ErrInternal      = errors.New("внутренняя ошибка сервиса")
)
