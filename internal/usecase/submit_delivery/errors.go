package submit_delivery

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("некорректные данные запроса")
	ErrSubmissionInFlight = errors.New("заявка на оплату уже отправляется")
	ErrNotEligible        = errors.New("заказ не готов к отправке")
	ErrPaymentRejected    = errors.New("платёжный шлюз отклонил заявку")
	ErrPaymentUnavailable = errors.New("платёжный шлюз недоступен")
	ErrUnsafeRedirect     = errors.New("платёжный шлюз вернул недоверенный адрес перенаправления")
	ErrInternal           = errors.New("внутренняя ошибка сервиса")
)

// NotEligibleError несёт полный список причин, по которым отправка запрещена.
type NotEligibleError struct {
	Blockers []string
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotEligible, strings.Join(e.Blockers, "; "))
}

func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}

// PaymentRejectedError несёт сообщение шлюза дословно, без перефразирования.
type PaymentRejectedError struct {
	Message string
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPaymentRejected, e.Message)
}

func (e *PaymentRejectedError) Unwrap() error {
	return ErrPaymentRejected
}
