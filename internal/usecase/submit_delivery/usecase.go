package submit_delivery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/payment"
	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
	checkEligibility "github.com/m04kA/SMC-DeliveryService/internal/usecase/check_eligibility"
)

// UseCase создаёт платёжную заявку доставки: финальная проверка готовности,
// сохранение данных доставки, payment-ready в шлюз, проверка redirect URL
// по allow-list, фиксация pending-заказа и пометка броней.
type UseCase struct {
	checker      EligibilityChecker
	infoService  InfoService
	payments     PaymentClient
	orders       PendingOrderRepository
	reservations ReservationRepository
	state        CheckoutState
	txManager    TransactionManager
	timeProvider TimeProvider
	allowedHosts []string
	logger       Logger

	// attempts хранит idempotency-ключ незавершённой попытки оплаты.
	// Ключ переживает транспортный сбой шлюза (повтор уйдёт с тем же ключом)
	// и сбрасывается при settlement: успех либо бизнес-отказ (400)
	attemptsMu sync.Mutex
	attempts   map[int64]string
}

func NewUseCase(
	checker EligibilityChecker,
	infoService InfoService,
	payments PaymentClient,
	orders PendingOrderRepository,
	reservations ReservationRepository,
	state CheckoutState,
	txManager TransactionManager,
	timeProvider TimeProvider,
	allowedHosts []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		checker:      checker,
		infoService:  infoService,
		payments:     payments,
		orders:       orders,
		reservations: reservations,
		state:        state,
		txManager:    txManager,
		timeProvider: timeProvider,
		allowedHosts: allowedHosts,
		logger:       logger,
		attempts:     make(map[int64]string),
	}
}

// Execute выполняет отправку заявки на оплату доставки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Один submit на пользователя одновременно
	if !uc.state.TryBeginSubmit(req.UserID) {
		return nil, ErrSubmissionInFlight
	}
	defer uc.state.EndSubmit(req.UserID)

	// Реконсиляция: брошенные pending-заявки отменяем до новой попытки
	uc.cancelStalePending(ctx, req.UserID)

	eligibility, err := uc.checker.Execute(ctx, &checkEligibility.Request{
		UserID:        req.UserID,
		SelectedCodes: req.SelectedCodes,
		DeliveryType:  req.DeliveryType,
		Slot:          req.Slot,
		SkipInFlight:  true,
	})
	if err != nil {
		uc.logger.Error("[SubmitDelivery] Ошибка проверки готовности: userID=%d, error=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: проверка готовности: %v", ErrInternal, err)
	}
	if !eligibility.CanSubmit {
		return nil, &NotEligibleError{Blockers: eligibility.Blockers}
	}

	estimate, ok := uc.state.Estimate(req.UserID)
	if !ok {
		// Готовность уже подтверждена, отсутствие оценки означает гонку со сбросом
		return nil, fmt.Errorf("%w: оценка доставки утрачена между проверкой и отправкой", ErrInternal)
	}

	// Данные доставки сохраняются ДО обращения в шлюз: пользователь не должен
	// перевводить адрес после сбоя оплаты
	if _, err := uc.infoService.Upsert(ctx, &infoModels.UpsertRequest{
		UserID:     req.UserID,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Address1:   req.Address1,
		Address2:   req.Address2,
		Latitude:   &estimate.Latitude,
		Longitude:  &estimate.Longitude,
	}); err != nil {
		uc.logger.Error("[SubmitDelivery] Ошибка сохранения данных доставки: userID=%d, error=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: сохранение данных доставки: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	readyReq := &payment.ReadyRequest{
		IdempotencyKey:   uc.attemptKey(req.UserID),
		ReservationCodes: req.SelectedCodes,
		Amount:           eligibility.SelectedAmount,
		DeliveryFee:      eligibility.DeliveryFee,
		Phone:            req.Phone,
		PostalCode:       req.PostalCode,
		Address1:         req.Address1,
		Address2:         req.Address2,
		Latitude:         estimate.Latitude,
		Longitude:        estimate.Longitude,
		RequestHour:      now.Hour(),
		RequestMinute:    now.Minute(),
	}
	if req.DeliveryType == domain.DeliveryScheduled && req.Slot != nil {
		hour, minute := req.Slot.Hour, req.Slot.Minute
		readyReq.ScheduledHour = &hour
		readyReq.ScheduledMinute = &minute
	}

	ready, err := uc.payments.Ready(ctx, readyReq)
	if err != nil {
		var rejected *payment.RejectedError
		if errors.As(err, &rejected) {
			// Бизнес-отказ - settlement: ключ сбрасывается, сообщение шлюза
			// отдаётся дословно
			uc.clearAttempt(req.UserID)
			uc.logger.Warn("[SubmitDelivery] Шлюз отклонил заявку: userID=%d, message=%s", req.UserID, rejected.Message)
			return nil, &PaymentRejectedError{Message: rejected.Message}
		}
		// Транспортный сбой: ключ остаётся, повтор уйдёт с тем же ключом
		uc.logger.Error("[SubmitDelivery] Шлюз недоступен: userID=%d, error=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	if !domain.IsAllowedRedirectHost(ready.RedirectURL, uc.allowedHosts) ||
		!domain.IsAllowedRedirectHost(ready.MobileRedirectURL, uc.allowedHosts) {
		uc.logger.Error("[SubmitDelivery] Недоверенный redirect от шлюза: userID=%d, orderCode=%s, url=%s, mobileURL=%s",
			req.UserID, ready.OrderCode, ready.RedirectURL, ready.MobileRedirectURL)
		uc.clearAttempt(req.UserID)
		uc.cancelOrder(ctx, ready.OrderCode)
		return nil, ErrUnsafeRedirect
	}

	order := &domain.DeliveryOrder{
		OrderCode:        ready.OrderCode,
		UserID:           req.UserID,
		ReservationCodes: req.SelectedCodes,
		Amount:           eligibility.SelectedAmount,
		Fee:              eligibility.DeliveryFee,
		Status:           domain.OrderPaymentPending,
		ScheduledHour:    readyReq.ScheduledHour,
		ScheduledMinute:  readyReq.ScheduledMinute,
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.orders.Create(ctx, order); err != nil {
			return fmt.Errorf("создание pending-заказа: %w", err)
		}
		if err := uc.reservations.SetDeliveryClaimed(ctx, req.SelectedCodes, true); err != nil {
			return fmt.Errorf("пометка броней: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("[SubmitDelivery] Ошибка фиксации заказа: userID=%d, orderCode=%s, error=%v", req.UserID, ready.OrderCode, err)
		uc.clearAttempt(req.UserID)
		uc.cancelOrder(ctx, ready.OrderCode)
		return nil, fmt.Errorf("%w: фиксация заказа: %v", ErrInternal, err)
	}

	uc.clearAttempt(req.UserID)

	target := domain.ResolveRedirectTarget(req.UserAgent, ready.RedirectURL, ready.MobileRedirectURL)

	uc.logger.Info("[SubmitDelivery] Заявка создана: userID=%d, orderCode=%s, amount=%d, fee=%d, redirect=%s",
		req.UserID, ready.OrderCode, order.Amount, order.Fee, target.Kind)

	return &Response{
		OrderCode:       ready.OrderCode,
		Amount:          order.Amount,
		Fee:             order.Fee,
		RedirectKind:    target.Kind,
		RedirectURL:     target.URL,
		FallbackURL:     target.FallbackURL,
		FallbackDelayMs: target.FallbackDelayMs,
	}, nil
}

// attemptKey возвращает idempotency-ключ текущей попытки, создавая его лениво
func (uc *UseCase) attemptKey(userID int64) string {
	uc.attemptsMu.Lock()
	defer uc.attemptsMu.Unlock()

	key, ok := uc.attempts[userID]
	if !ok {
		key = uuid.NewString()
		uc.attempts[userID] = key
	}
	return key
}

func (uc *UseCase) clearAttempt(userID int64) {
	uc.attemptsMu.Lock()
	defer uc.attemptsMu.Unlock()
	delete(uc.attempts, userID)
}

// cancelStalePending отменяет незавершённые заявки пользователя: best-effort,
// сбой отмены не блокирует новую попытку
func (uc *UseCase) cancelStalePending(ctx context.Context, userID int64) {
	stale, err := uc.orders.GetPendingByUser(ctx, userID)
	if err != nil {
		uc.logger.Warn("[SubmitDelivery] Не удалось получить pending-заявки: userID=%d, error=%v", userID, err)
		return
	}

	for _, order := range stale {
		uc.cancelOrder(ctx, order.OrderCode)
		if err := uc.orders.UpdateStatus(ctx, order.OrderCode, domain.OrderCancelled); err != nil {
			uc.logger.Warn("[SubmitDelivery] Не удалось пометить заявку отменённой: orderCode=%s, error=%v", order.OrderCode, err)
			continue
		}
		if err := uc.reservations.SetDeliveryClaimed(ctx, order.ReservationCodes, false); err != nil {
			uc.logger.Warn("[SubmitDelivery] Не удалось снять пометку с броней: orderCode=%s, error=%v", order.OrderCode, err)
		}
		uc.logger.Info("[SubmitDelivery] Брошенная заявка отменена: userID=%d, orderCode=%s", userID, order.OrderCode)
	}
}

func (uc *UseCase) cancelOrder(ctx context.Context, orderCode string) {
	if err := uc.payments.Cancel(ctx, orderCode); err != nil {
		uc.logger.Warn("[SubmitDelivery] Не удалось отменить заявку в шлюзе: orderCode=%s, error=%v", orderCode, err)
	}
}
