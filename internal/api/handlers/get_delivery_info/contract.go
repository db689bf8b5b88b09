package get_delivery_info

import (
	"context"

	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
)

// InfoService интерфейс сервиса данных доставки
type InfoService interface {
	Get(ctx context.Context, userID int64) (*infoModels.InfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
