package check_eligibility

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ConfigProvider интерфейс сервиса конфигурации доставки
type ConfigProvider interface {
	GetConfig(ctx context.Context) *domain.DeliveryConfig
}

// ReservationsProvider интерфейс сервиса броней
type ReservationsProvider interface {
	GetTodayCandidates(ctx context.Context, userID int64) ([]*domain.ReservationCandidate, error)
}

// InfoRepository интерфейс репозитория данных доставки
type InfoRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.DeliveryInfo, error)
}

// CheckoutState интерфейс эфемерного состояния сессии оформления
type CheckoutState interface {
	Estimate(userID int64) (*domain.DistanceEstimate, bool)
	InFlight(userID int64) (geocoding, submitting bool)
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
