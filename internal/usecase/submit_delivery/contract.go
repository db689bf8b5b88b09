package submit_delivery

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/payment"
	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
	checkEligibility "github.com/m04kA/SMC-DeliveryService/internal/usecase/check_eligibility"
)

// EligibilityChecker интерфейс агрегатора готовности к отправке
type EligibilityChecker interface {
	Execute(ctx context.Context, req *checkEligibility.Request) (*checkEligibility.Response, error)
}

// InfoService интерфейс сервиса данных доставки
type InfoService interface {
	Upsert(ctx context.Context, req *infoModels.UpsertRequest) (*infoModels.InfoResponse, error)
}

// PaymentClient интерфейс клиента платёжного шлюза
type PaymentClient interface {
	Ready(ctx context.Context, req *payment.ReadyRequest) (*payment.ReadyResponse, error)
	Cancel(ctx context.Context, orderCode string) error
}

// PendingOrderRepository интерфейс репозитория платёжных заявок
type PendingOrderRepository interface {
	Create(ctx context.Context, order *domain.DeliveryOrder) (*domain.DeliveryOrder, error)
	GetPendingByUser(ctx context.Context, userID int64) ([]*domain.DeliveryOrder, error)
	UpdateStatus(ctx context.Context, orderCode string, status domain.DeliveryOrderStatus) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	SetDeliveryClaimed(ctx context.Context, codes []string, claimed bool) error
}

// CheckoutState интерфейс эфемерного состояния сессии оформления
type CheckoutState interface {
	TryBeginSubmit(userID int64) bool
	EndSubmit(userID int64)
	Estimate(userID int64) (*domain.DistanceEstimate, bool)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
