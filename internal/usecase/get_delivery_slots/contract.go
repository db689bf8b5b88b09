package get_delivery_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ConfigProvider интерфейс сервиса конфигурации доставки
type ConfigProvider interface {
	GetConfig(ctx context.Context) *domain.DeliveryConfig
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
