package update_delivery_info

import (
	"context"

	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
)

// InfoService интерфейс сервиса данных доставки
type InfoService interface {
	Upsert(ctx context.Context, req *infoModels.UpsertRequest) (*infoModels.InfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
