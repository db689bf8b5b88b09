package get_delivery_slots

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// UseCase use case получения состояния окна доставки и слотов
type UseCase struct {
	configService ConfigProvider
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configService ConfigProvider, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		configService: configService,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов
// Слоты регенерируются на каждый запрос: выбранный слот - состояние клиента,
// сервис ничего про него не помнит
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	cfg := uc.configService.GetConfig(ctx)
	policy := domain.NewTimeWindowPolicy(cfg)
	now := uc.timeProvider.Now()

	slots := make([]Slot, 0)
	for _, s := range policy.GenerateSlots() {
		from, to := s.DisplayRange()
		slots = append(slots, Slot{
			Hour:      s.Hour,
			Minute:    s.Minute,
			RangeFrom: from,
			RangeTo:   to,
			Available: policy.IsSlotAvailable(s, now),
		})
	}

	windowStart, windowEnd := cfg.WindowBounds()
	resp := &Response{
		Enabled:             cfg.Enabled,
		SchedulingSupported: cfg.SchedulingSupported,
		ImmediateOrderable:  policy.ImmediateOrderable(now),
		ScheduledOrderable:  policy.ScheduledOrderable(now),
		WindowStart:         windowStart,
		WindowEnd:           windowEnd,
		Slots:               slots,
	}

	uc.logger.Info("GetDeliverySlots: immediate=%t, scheduled=%t, slots=%d",
		resp.ImmediateOrderable, resp.ScheduledOrderable, len(slots))
	return resp, nil
}
