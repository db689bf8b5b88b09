package cancel_pending_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/infra/storage/pendingorder"
)

// UseCase отменяет незавершённую платёжную заявку: best-effort отмена в шлюзе,
// перевод заявки в cancelled и освобождение помеченных броней
type UseCase struct {
	orders       PendingOrderRepository
	reservations ReservationRepository
	payments     PaymentClient
	logger       Logger
}

func NewUseCase(
	orders PendingOrderRepository,
	reservations ReservationRepository,
	payments PaymentClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		orders:       orders,
		reservations: reservations,
		payments:     payments,
		logger:       logger,
	}
}

// Execute выполняет отмену платёжной заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	if req == nil || req.UserID <= 0 || req.OrderCode == "" {
		return fmt.Errorf("%w: не указан код заявки", ErrInvalidInput)
	}

	order, err := uc.orders.GetByOrderCode(ctx, req.OrderCode)
	if err != nil {
		if errors.Is(err, pendingorder.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		uc.logger.Error("[CancelPendingPayment] Ошибка получения заявки: orderCode=%s, error=%v", req.OrderCode, err)
		return fmt.Errorf("%w: получение заявки: %v", ErrInternal, err)
	}

	// Чужие заявки неотличимы от несуществующих
	if order.UserID != req.UserID {
		return ErrOrderNotFound
	}

	// Повторная отмена идемпотентна
	if !order.IsPending() {
		return nil
	}

	// Отмена в шлюзе best-effort: недоступность шлюза не должна оставлять
	// заявку висеть в pending на нашей стороне
	if err := uc.payments.Cancel(ctx, order.OrderCode); err != nil {
		uc.logger.Warn("[CancelPendingPayment] Не удалось отменить заявку в шлюзе: orderCode=%s, error=%v", order.OrderCode, err)
	}

	if err := uc.orders.UpdateStatus(ctx, order.OrderCode, domain.OrderCancelled); err != nil {
		uc.logger.Error("[CancelPendingPayment] Ошибка обновления статуса: orderCode=%s, error=%v", order.OrderCode, err)
		return fmt.Errorf("%w: обновление статуса: %v", ErrInternal, err)
	}

	if err := uc.reservations.SetDeliveryClaimed(ctx, order.ReservationCodes, false); err != nil {
		uc.logger.Warn("[CancelPendingPayment] Не удалось снять пометку с броней: orderCode=%s, error=%v", order.OrderCode, err)
	}

	uc.logger.Info("[CancelPendingPayment] Заявка отменена: userID=%d, orderCode=%s", req.UserID, order.OrderCode)
	return nil
}
