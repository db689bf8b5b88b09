package get_delivery_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

type fakeConfig struct{ cfg *domain.DeliveryConfig }

func (f *fakeConfig) GetConfig(_ context.Context) *domain.DeliveryConfig { return f.cfg }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

// Окно по умолчанию 12:00-19:30: слоты 13:00..19:00 с шагом в час
func TestExecute_MidWindow(t *testing.T) {
	uc := NewUseCase(&fakeConfig{cfg: domain.DefaultConfig()}, fixedTime{now: at(14, 0)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.True(t, resp.Enabled)
	assert.True(t, resp.ImmediateOrderable)
	assert.True(t, resp.ScheduledOrderable)
	assert.Equal(t, "12:00", resp.WindowStart)
	assert.Equal(t, "19:30", resp.WindowEnd)

	require.Len(t, resp.Slots, 7)
	assert.Equal(t, 13, resp.Slots[0].Hour)
	assert.Equal(t, 19, resp.Slots[6].Hour)
	assert.Equal(t, "12:00", resp.Slots[0].RangeFrom)
	assert.Equal(t, "13:00", resp.Slots[0].RangeTo)

	// В 14:00 слоты до 15:00 не проходят минимальное время до начала
	assert.False(t, resp.Slots[0].Available) // 13:00 уже прошёл
	assert.False(t, resp.Slots[1].Available) // 14:00 lead time 0
	assert.True(t, resp.Slots[2].Available)  // 15:00 lead time 60
}

func TestExecute_BeforeWindow(t *testing.T) {
	uc := NewUseCase(&fakeConfig{cfg: domain.DefaultConfig()}, fixedTime{now: at(11, 59)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.False(t, resp.ImmediateOrderable)
	// До открытия окна все слоты с достаточным запасом доступны
	assert.True(t, resp.ScheduledOrderable)
	assert.True(t, resp.Slots[0].Available)
}

func TestExecute_AfterScheduledCutoff(t *testing.T) {
	// 18:31: немедленная доставка ещё доступна, запланированная уже закрыта
	uc := NewUseCase(&fakeConfig{cfg: domain.DefaultConfig()}, fixedTime{now: at(18, 31)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.True(t, resp.ImmediateOrderable)
	assert.False(t, resp.ScheduledOrderable)
}

func TestExecute_DisabledConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Enabled = false
	uc := NewUseCase(&fakeConfig{cfg: cfg}, fixedTime{now: at(14, 0)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.False(t, resp.Enabled)
}
