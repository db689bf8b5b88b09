package deliveryconfig

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации доставки
type ConfigRepository interface {
	GetActive(ctx context.Context) (*domain.DeliveryConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
