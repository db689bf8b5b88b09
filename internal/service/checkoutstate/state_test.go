package checkoutstate

import (
	"testing"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeGenerations_StaleResultDiscarded(t *testing.T) {
	store := NewStore()
	userID := int64(7)

	gen1 := store.BeginGeocode(userID)
	gen2 := store.BeginGeocode(userID)
	require.Greater(t, gen2, gen1)

	fresh := &domain.DistanceEstimate{DistanceKm: 1.2, Fee: 3100}
	stale := &domain.DistanceEstimate{DistanceKm: 9.9, Fee: 9900}

	// Новый запрос завершается первым
	assert.True(t, store.CompleteGeocode(userID, gen2, fresh))
	// Устаревший результат не должен перезаписать более свежее состояние
	assert.False(t, store.CompleteGeocode(userID, gen1, stale))

	got, ok := store.Estimate(userID)
	require.True(t, ok)
	assert.Equal(t, fresh, got)
}

func TestInvalidateEstimate_ObsoletesInFlightGeocode(t *testing.T) {
	store := NewStore()
	userID := int64(7)

	gen := store.BeginGeocode(userID)
	store.InvalidateEstimate(userID)

	assert.False(t, store.CompleteGeocode(userID, gen, &domain.DistanceEstimate{}))

	_, ok := store.Estimate(userID)
	assert.False(t, ok)

	geocoding, _ := store.InFlight(userID)
	assert.False(t, geocoding)
}

func TestGeocodeFailure_ClearsStaleEstimate(t *testing.T) {
	store := NewStore()
	userID := int64(3)

	gen := store.BeginGeocode(userID)
	require.True(t, store.CompleteGeocode(userID, gen, &domain.DistanceEstimate{DistanceKm: 0.5, Fee: 3000}))

	// Провал следующего геокодирования фиксируется nil-оценкой:
	// UI не должен показывать плату, посчитанную под прежний адрес
	gen = store.BeginGeocode(userID)
	require.True(t, store.CompleteGeocode(userID, gen, nil))

	_, ok := store.Estimate(userID)
	assert.False(t, ok)
}

func TestSubmitFlag(t *testing.T) {
	store := NewStore()
	userID := int64(1)

	require.True(t, store.TryBeginSubmit(userID))
	assert.False(t, store.TryBeginSubmit(userID), "повторная отправка блокируется")

	store.EndSubmit(userID)
	assert.True(t, store.TryBeginSubmit(userID))
}

func TestInFlightFlags(t *testing.T) {
	store := NewStore()
	userID := int64(5)

	geocoding, submitting := store.InFlight(userID)
	assert.False(t, geocoding)
	assert.False(t, submitting)

	store.BeginGeocode(userID)
	store.TryBeginSubmit(userID)

	geocoding, submitting = store.InFlight(userID)
	assert.True(t, geocoding)
	assert.True(t, submitting)
}
