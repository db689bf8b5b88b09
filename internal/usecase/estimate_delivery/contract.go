package estimate_delivery

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/geocoder"
)

// GeocoderClient интерфейс клиента геокодирования
type GeocoderClient interface {
	Geocode(ctx context.Context, address string) (*geocoder.Point, error)
}

// ConfigProvider интерфейс сервиса конфигурации доставки
type ConfigProvider interface {
	GetConfig(ctx context.Context) *domain.DeliveryConfig
}

// CheckoutState интерфейс эфемерного состояния сессии оформления
type CheckoutState interface {
	BeginGeocode(userID int64) uint64
	CompleteGeocode(userID int64, generation uint64, estimate *domain.DistanceEstimate) bool
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
