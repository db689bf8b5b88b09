package get_delivery_slots

import (
	"context"

	getDeliverySlots "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_slots"
)

type GetDeliverySlotsUseCase interface {
	Execute(ctx context.Context, req *getDeliverySlots.Request) (*getDeliverySlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
