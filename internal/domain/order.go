package domain

import "time"

// DeliveryOrderStatus статус платёжной заявки доставки
type DeliveryOrderStatus string

const (
	// OrderPaymentPending payment-ready создан, оплата не завершена
	OrderPaymentPending DeliveryOrderStatus = "payment_pending"
	// OrderCancelled заявка отменена (в том числе реконсиляцией брошенных попыток)
	OrderCancelled DeliveryOrderStatus = "cancelled"
)

// DeliveryOrder запись о инициированной оплате доставки.
// Используется для реконсиляции: брошенная pending-заявка проактивно
// отменяется при следующем обращении пользователя.
type DeliveryOrder struct {
	ID               int64
	OrderCode        string
	UserID           int64
	ReservationCodes []string
	Amount           int
	Fee              int
	Status           DeliveryOrderStatus
	ScheduledHour    *int
	ScheduledMinute  *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPending returns true while the payment has not settled or been cancelled
func (o *DeliveryOrder) IsPending() bool {
	return o.Status == OrderPaymentPending
}
