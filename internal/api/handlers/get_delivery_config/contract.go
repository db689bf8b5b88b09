package get_delivery_config

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ConfigProvider интерфейс сервиса конфигурации доставки
type ConfigProvider interface {
	GetConfig(ctx context.Context) *domain.DeliveryConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
