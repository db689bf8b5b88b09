package check_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	infoRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/deliveryinfo"
)

// UseCase use case агрегатора готовности к отправке
// Чистое И всех условий: каждое нарушенное условие добавляет своё сообщение,
// ни одно не закорачивает остальные
type UseCase struct {
	configService       ConfigProvider
	reservationsService ReservationsProvider
	infoRepo            InfoRepository
	checkoutState       CheckoutState
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configService ConfigProvider,
	reservationsService ReservationsProvider,
	infoRepo InfoRepository,
	checkoutState CheckoutState,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		configService:       configService,
		reservationsService: reservationsService,
		infoRepo:            infoRepo,
		checkoutState:       checkoutState,
		timeProvider:        timeProvider,
		logger:              logger,
	}
}

// Execute выполняет проверку всех условий отправки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.DeliveryType != "" && !req.DeliveryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown delivery type %q", ErrInvalidInput, req.DeliveryType)
	}

	cfg := uc.configService.GetConfig(ctx)
	policy := domain.NewTimeWindowPolicy(cfg)
	now := uc.timeProvider.Now()

	blockers := make([]string, 0)

	// 1. Доставка включена конфигурацией
	if !cfg.Enabled {
		blockers = append(blockers, BlockerDeliveryDisabled)
	}

	// 2. Выбрана хотя бы одна бронь (среди реально доступных кандидатов)
	candidates, err := uc.reservationsService.GetTodayCandidates(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CheckEligibility: failed to get candidates for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get candidates: %v", ErrInternal, err)
	}

	selectedAmount := domain.SelectedAmount(candidates, req.SelectedCodes)
	if countValidSelected(candidates, req.SelectedCodes) == 0 {
		blockers = append(blockers, BlockerNoSelection)
	}

	// 3. Телефон и адрес заполнены
	info, err := uc.infoRepo.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, infoRepo.ErrInfoNotFound) {
		uc.logger.Error("CheckEligibility: failed to get delivery info for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get delivery info: %v", ErrInternal, err)
	}
	if info == nil || !info.HasContact() {
		blockers = append(blockers, BlockerMissingPhone)
	}
	if info == nil || !info.HasAddress() {
		blockers = append(blockers, BlockerMissingAddress)
	}

	// 4. Последняя оценка расстояния/платы валидна
	// 4a. Адрес в пределах радиуса доставки - жёсткий блокер:
	// оценка при этом возвращается и отображается (см. DESIGN.md)
	resp := &Response{
		SelectedAmount: selectedAmount,
		MinAmount:      cfg.MinAmount,
	}

	estimate, hasEstimate := uc.checkoutState.Estimate(req.UserID)
	if !hasEstimate {
		blockers = append(blockers, BlockerNoEstimate)
	} else {
		resp.DeliveryFee = estimate.Fee
		resp.DistanceKm = estimate.DistanceKm
		resp.OutOfRange = estimate.IsOutOfRange(cfg)
		if resp.OutOfRange {
			blockers = append(blockers, BlockerOutOfRange)
		}
	}

	// 5. Минимальная сумма заказа
	if selectedAmount < cfg.MinAmount {
		blockers = append(blockers, BlockerBelowMinAmount)
	}

	// 6. Текущее время внутри окна доставки
	if policy.IsBeforeStart(now) {
		blockers = append(blockers, BlockerBeforeWindowStart)
	}
	if policy.IsAfterDeadline(now) {
		blockers = append(blockers, BlockerAfterWindowEnd)
	}

	// 7. Для запланированной доставки выбран валидный слот
	if req.DeliveryType == domain.DeliveryScheduled {
		switch {
		case req.Slot == nil:
			blockers = append(blockers, BlockerNoSlotChosen)
		case !policy.ContainsSlot(*req.Slot) || !policy.IsSlotAvailable(*req.Slot, now):
			blockers = append(blockers, BlockerUnknownSlot)
		}
	}

	// 8. Нет незавершённых операций
	geocoding, submitting := uc.checkoutState.InFlight(req.UserID)
	if geocoding {
		blockers = append(blockers, BlockerGeocodeInFlight)
	}
	if submitting && !req.SkipInFlight {
		blockers = append(blockers, BlockerSubmitInFlight)
	}

	resp.Blockers = blockers
	resp.CanSubmit = len(blockers) == 0

	uc.logger.Info("CheckEligibility: user=%d, can_submit=%t, blockers=%d, amount=%d",
		req.UserID, resp.CanSubmit, len(blockers), selectedAmount)
	return resp, nil
}

// countValidSelected считает выбранные коды, присутствующие среди кандидатов
func countValidSelected(candidates []*domain.ReservationCandidate, selected []string) int {
	known := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		known[c.DisplayCode] = struct{}{}
	}

	count := 0
	for _, code := range selected {
		if _, ok := known[code]; ok {
			count++
		}
	}
	return count
}
