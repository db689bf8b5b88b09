package cancel_pending_payment

import (
	"context"

	cancelPendingPayment "github.com/m04kA/SMC-DeliveryService/internal/usecase/cancel_pending_payment"
)

type CancelPendingPaymentUseCase interface {
	Execute(ctx context.Context, req *cancelPendingPayment.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
