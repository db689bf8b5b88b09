package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowTestConfig() *DeliveryConfig {
	cfg := DefaultConfig()
	cfg.StartHour, cfg.StartMinute = 12, 0
	cfg.EndHour, cfg.EndMinute = 19, 30
	return cfg
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func TestImmediateOrderable_WindowGating(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"за минуту до открытия", at(11, 59), false},
		{"ровно в открытие", at(12, 0), true},
		{"середина окна", at(15, 30), true},
		{"ровно в дедлайн", at(19, 30), true},
		{"минута после дедлайна", at(19, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.ImmediateOrderable(tt.now))
		})
	}
}

func TestImmediateOrderable_DisabledConfig(t *testing.T) {
	cfg := windowTestConfig()
	cfg.Enabled = false
	policy := NewTimeWindowPolicy(cfg)

	assert.False(t, policy.ImmediateOrderable(at(15, 0)))
}

func TestGenerateSlots(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())

	slots := policy.GenerateSlots()

	// start+60 = 13:00, далее каждый час, 20:00 уже за концом окна 19:30
	want := []ScheduledSlot{
		{13, 0}, {14, 0}, {15, 0}, {16, 0}, {17, 0}, {18, 0}, {19, 0},
	}
	assert.Equal(t, want, slots)
}

func TestGenerateSlots_EndOnBoundary(t *testing.T) {
	cfg := windowTestConfig()
	cfg.EndHour, cfg.EndMinute = 20, 0
	policy := NewTimeWindowPolicy(cfg)

	slots := policy.GenerateSlots()

	// Конец окна включается, когда попадает на часовую границу
	require.NotEmpty(t, slots)
	assert.Equal(t, ScheduledSlot{20, 0}, slots[len(slots)-1])
}

func TestIsSlotAvailable_LeadTime(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())

	slot := ScheduledSlot{15, 0}

	// Ровно 60 минут - доступен, 59 минут - нет
	assert.True(t, policy.IsSlotAvailable(slot, at(14, 0)))
	assert.False(t, policy.IsSlotAvailable(slot, at(14, 1)))
	assert.False(t, policy.IsSlotAvailable(slot, at(15, 0)))
}

func TestAvailableSlots_NoSlotWithin59Minutes(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())
	now := at(14, 30)

	for _, slot := range policy.AvailableSlots(now) {
		lead := slot.TotalMinutes() - (now.Hour()*60 + now.Minute())
		assert.GreaterOrEqual(t, lead, MinLeadTimeMinutes, "slot %s", slot)
	}
}

func TestScheduledOrderable(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())

	// Cutoff = 19:30 - 60 = 18:30
	assert.Equal(t, 18*60+30, policy.ScheduledCutoffMinutes())

	assert.True(t, policy.ScheduledOrderable(at(14, 0)))
	assert.True(t, policy.ScheduledOrderable(at(18, 0)), "слот 19:00 ещё доступен")
	assert.False(t, policy.ScheduledOrderable(at(18, 31)), "после cutoff запланированный режим закрыт")
	assert.False(t, policy.ScheduledOrderable(at(19, 0)))
}

func TestScheduledOrderable_ZeroSlotsDisablesMode(t *testing.T) {
	policy := NewTimeWindowPolicy(windowTestConfig())

	// 18:01: единственный оставшийся слот 19:00 требует 60 минут - недоступен
	now := at(18, 1)
	require.Empty(t, policy.AvailableSlots(now))
	assert.False(t, policy.ScheduledOrderable(now))
}

func TestScheduledOrderable_SchedulingNotSupported(t *testing.T) {
	cfg := windowTestConfig()
	cfg.SchedulingSupported = false
	policy := NewTimeWindowPolicy(cfg)

	assert.False(t, policy.ScheduledOrderable(at(14, 0)))
}

func TestSlotDisplayRange(t *testing.T) {
	from, to := ScheduledSlot{13, 0}.DisplayRange()
	assert.Equal(t, "12:00", from)
	assert.Equal(t, "13:00", to)
}

func TestSlotString_SingleDigitParts(t *testing.T) {
	assert.Equal(t, "09:05", ScheduledSlot{9, 5}.String())
}

func TestWindowBounds(t *testing.T) {
	start, end := windowTestConfig().WindowBounds()
	assert.Equal(t, "12:00", start)
	assert.Equal(t, "19:30", end)
}
