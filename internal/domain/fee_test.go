package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeTestConfig() *DeliveryConfig {
	return &DeliveryConfig{
		Enabled:       true,
		StoreLat:      55.751244,
		StoreLng:      37.618423,
		MaxDistanceKm: 3.0,
		FeeDistanceKm: 1.0,
		FeeNear:       3000,
		FeePer100m:    50,
	}
}

func TestDeliveryFee_NearTier(t *testing.T) {
	cfg := feeTestConfig()

	assert.Equal(t, 3000, DeliveryFee(cfg, 0))
	assert.Equal(t, 3000, DeliveryFee(cfg, 0.5))
	// Граница ближней зоны включающая
	assert.Equal(t, 3000, DeliveryFee(cfg, 1.0))
}

func TestDeliveryFee_RoundsUpPer100m(t *testing.T) {
	cfg := feeTestConfig()

	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"чуть за границей - одна единица", 1.01, 3000 + 1*50},
		{"ровно 100м сверх", 1.1, 3000 + 1*50},
		{"150м округляются вверх до двух единиц", 1.15, 3000 + 2*50},
		{"ровно 200м сверх - две единицы, не три", 1.2, 3000 + 2*50},
		{"километр сверх", 2.0, 3000 + 10*50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryFee(cfg, tt.distance))
		})
	}
}

func TestDeliveryFee_Monotonic(t *testing.T) {
	cfg := feeTestConfig()

	prev := DeliveryFee(cfg, 0)
	for d := 0.05; d < 6.0; d += 0.05 {
		fee := DeliveryFee(cfg, d)
		require.GreaterOrEqual(t, fee, prev, "fee must be non-decreasing in distance, d=%.2f", d)
		prev = fee
	}
}

func TestHaversineKm(t *testing.T) {
	// Нулевое расстояние
	assert.InDelta(t, 0, HaversineKm(55.75, 37.61, 55.75, 37.61), 1e-9)

	// Москва - Санкт-Петербург, ~634 км по прямой
	d := HaversineKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, d, 5)

	// Симметрия
	assert.InDelta(t,
		HaversineKm(55.75, 37.61, 55.78, 37.65),
		HaversineKm(55.78, 37.65, 55.75, 37.61),
		1e-9)
}

func TestNewDistanceEstimate_OutOfRangeStillComputed(t *testing.T) {
	cfg := feeTestConfig()
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	// Точка примерно в 4.2 км от склада (смещение по широте)
	lat := cfg.StoreLat + 4.2/111.0
	est := NewDistanceEstimate(cfg, lat, cfg.StoreLng, now)

	require.NotNil(t, est)
	assert.InDelta(t, 4.2, est.DistanceKm, 0.05)
	assert.Greater(t, est.Fee, cfg.FeeNear, "плата считается и для точек вне радиуса")
	assert.True(t, est.IsOutOfRange(cfg))
}
