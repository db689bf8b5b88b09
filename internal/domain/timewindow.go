package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/pkg/types"
)

// ScheduledSlot один слот запланированной доставки.
// Не персистится; выбранный слот - эфемерное состояние сессии оформления.
type ScheduledSlot struct {
	Hour   int
	Minute int
}

// TotalMinutes returns the slot boundary as minutes since midnight
func (s ScheduledSlot) TotalMinutes() int {
	return s.Hour*60 + s.Minute
}

// String returns the "HH:MM" representation of the slot boundary
func (s ScheduledSlot) String() string {
	return formatMinutes(s.TotalMinutes())
}

// DisplayRange returns the start and end of the interval the slot covers:
// [slot - 60min, slot]
func (s ScheduledSlot) DisplayRange() (from, to string) {
	return formatMinutes(s.TotalMinutes() - SlotStepMinutes), s.String()
}

// formatMinutes renders minutes-of-day as "HH:MM" via types.TimeString
func formatMinutes(minutes int) string {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		// Слоты за пределами суток не генерируются, но не паникуем
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}
	return ts.String()
}

// TimeWindowPolicy time-window decisions for same-day delivery.
// Pure functions of (now, config): никакого собственного состояния.
// Единый объект политики, параметризованный enabled/schedulingSupported,
// вместо параллельных копий логики на вариант страницы.
type TimeWindowPolicy struct {
	cfg *DeliveryConfig
}

// NewTimeWindowPolicy создает политику для конфигурации
func NewTimeWindowPolicy(cfg *DeliveryConfig) *TimeWindowPolicy {
	return &TimeWindowPolicy{cfg: cfg}
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsBeforeStart returns true when now is earlier than the window start
func (p *TimeWindowPolicy) IsBeforeStart(now time.Time) bool {
	return minutesOfDay(now) < p.cfg.StartMinutes()
}

// IsAfterDeadline returns true when now is later than the window end.
// Граница включающая: ровно в момент конца окна заказ ещё возможен
func (p *TimeWindowPolicy) IsAfterDeadline(now time.Time) bool {
	return minutesOfDay(now) > p.cfg.EndMinutes()
}

// ImmediateOrderable returns true when an immediate delivery can be ordered now
func (p *TimeWindowPolicy) ImmediateOrderable(now time.Time) bool {
	return p.cfg.Enabled && !p.IsBeforeStart(now) && !p.IsAfterDeadline(now)
}

// ScheduledCutoffMinutes returns the minute-of-day after which scheduled
// orders close: ровно за час до дедлайна немедленной доставки, поскольку
// последний слот должен завершиться не позже конца окна
func (p *TimeWindowPolicy) ScheduledCutoffMinutes() int {
	return p.cfg.EndMinutes() - ScheduledCutoffBeforeEndMinutes
}

// GenerateSlots enumerates the hourly slot boundaries from start+60min
// through end inclusive, step 60 minutes
func (p *TimeWindowPolicy) GenerateSlots() []ScheduledSlot {
	slots := make([]ScheduledSlot, 0)
	for m := p.cfg.StartMinutes() + SlotStepMinutes; m <= p.cfg.EndMinutes(); m += SlotStepMinutes {
		slots = append(slots, ScheduledSlot{Hour: m / 60, Minute: m % 60})
	}
	return slots
}

// IsSlotAvailable returns true when the slot is at least MinLeadTimeMinutes
// in the future - минимальное время исполнения запланированной доставки
func (p *TimeWindowPolicy) IsSlotAvailable(slot ScheduledSlot, now time.Time) bool {
	return slot.TotalMinutes()-minutesOfDay(now) >= MinLeadTimeMinutes
}

// AvailableSlots returns generated slots that still satisfy the lead time
func (p *TimeWindowPolicy) AvailableSlots(now time.Time) []ScheduledSlot {
	available := make([]ScheduledSlot, 0)
	for _, slot := range p.GenerateSlots() {
		if p.IsSlotAvailable(slot, now) {
			available = append(available, slot)
		}
	}
	return available
}

// ScheduledOrderable returns true when scheduled delivery can be picked now.
// При нуле доступных слотов запланированный режим должен быть недоступен,
// а не молча отправляться без слота
func (p *TimeWindowPolicy) ScheduledOrderable(now time.Time) bool {
	if !p.cfg.Enabled || !p.cfg.SchedulingSupported {
		return false
	}
	if minutesOfDay(now) > p.ScheduledCutoffMinutes() {
		return false
	}
	return len(p.AvailableSlots(now)) > 0
}

// ContainsSlot returns true when the slot is one of the generated boundaries
func (p *TimeWindowPolicy) ContainsSlot(slot ScheduledSlot) bool {
	for _, s := range p.GenerateSlots() {
		if s == slot {
			return true
		}
	}
	return false
}
