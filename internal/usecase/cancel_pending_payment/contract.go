package cancel_pending_payment

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// PendingOrderRepository интерфейс репозитория платёжных заявок
type PendingOrderRepository interface {
	GetByOrderCode(ctx context.Context, orderCode string) (*domain.DeliveryOrder, error)
	UpdateStatus(ctx context.Context, orderCode string, status domain.DeliveryOrderStatus) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	SetDeliveryClaimed(ctx context.Context, codes []string, claimed bool) error
}

// PaymentClient интерфейс клиента платёжного шлюза
type PaymentClient interface {
	Cancel(ctx context.Context, orderCode string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
