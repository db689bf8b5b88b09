package deliveryinfo

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// InfoRepository интерфейс репозитория данных доставки
type InfoRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.DeliveryInfo, error)
	Upsert(ctx context.Context, info *domain.DeliveryInfo) (*domain.DeliveryInfo, error)
}

// CheckoutState интерфейс эфемерного состояния сессии оформления
type CheckoutState interface {
	InvalidateEstimate(userID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
