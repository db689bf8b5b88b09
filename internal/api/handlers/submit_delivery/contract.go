package submit_delivery

import (
	"context"

	submitDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/submit_delivery"
)

type SubmitDeliveryUseCase interface {
	Execute(ctx context.Context, req *submitDelivery.Request) (*submitDelivery.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
