package estimate_delivery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/geocoder"
)

type fakeGeocoder struct {
	point *geocoder.Point
	err   error

	lastAddress string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*geocoder.Point, error) {
	f.lastAddress = address
	if f.err != nil {
		return nil, f.err
	}
	return f.point, nil
}

type fakeConfig struct{ cfg *domain.DeliveryConfig }

func (f *fakeConfig) GetConfig(_ context.Context) *domain.DeliveryConfig { return f.cfg }

type fakeState struct {
	// stale имитирует гонку: пока геокодер отвечал, адрес сменился
	stale bool

	generation uint64
	completed  []*domain.DistanceEstimate
}

func (f *fakeState) BeginGeocode(_ int64) uint64 {
	f.generation++
	return f.generation
}

func (f *fakeState) CompleteGeocode(_ int64, _ uint64, estimate *domain.DistanceEstimate) bool {
	if f.stale {
		return false
	}
	f.completed = append(f.completed, estimate)
	return true
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.DeliveryConfig {
	cfg := domain.DefaultConfig()
	cfg.StoreLat = 55.7558
	cfg.StoreLng = 37.6173
	cfg.FeeDistanceKm = 1.0
	cfg.FeeNear = 3000
	cfg.FeePer100m = 500
	cfg.MaxDistanceKm = 3.0
	return cfg
}

func newUC(geo *fakeGeocoder, state *fakeState) *UseCase {
	return NewUseCase(
		geo,
		&fakeConfig{cfg: testConfig()},
		state,
		fixedTime{now: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestExecute_NearZone(t *testing.T) {
	// Точка в сотнях метров от склада: ближняя зона, плоская плата
	geo := &fakeGeocoder{point: &geocoder.Point{Latitude: 55.7601, Longitude: 37.6201}}
	state := &fakeState{}

	resp, err := newUC(geo, state).Execute(context.Background(), &Request{UserID: 42, Address: "ул. Тверская, д. 1"})
	require.NoError(t, err)

	assert.Equal(t, "ул. Тверская, д. 1", geo.lastAddress)
	assert.InDelta(t, 0.5, resp.DistanceKm, 0.2)
	assert.Equal(t, 3000, resp.Fee)
	assert.False(t, resp.OutOfRange)

	// Оценка зафиксирована в состоянии сессии для агрегатора
	require.Len(t, state.completed, 1)
	assert.Equal(t, resp.Fee, state.completed[0].Fee)
}

func TestExecute_OutOfRangeStillEstimated(t *testing.T) {
	// ~5.6 км к северу: за радиусом, но оценка возвращается для отображения
	geo := &fakeGeocoder{point: &geocoder.Point{Latitude: 55.8061, Longitude: 37.6173}}

	resp, err := newUC(geo, &fakeState{}).Execute(context.Background(), &Request{UserID: 42, Address: "далёкий адрес"})
	require.NoError(t, err)

	assert.True(t, resp.OutOfRange)
	assert.Greater(t, resp.DistanceKm, 3.0)
	assert.Greater(t, resp.Fee, 3000)
}

func TestExecute_AddressNotFound(t *testing.T) {
	geo := &fakeGeocoder{err: geocoder.ErrAddressNotFound}
	state := &fakeState{}

	_, err := newUC(geo, state).Execute(context.Background(), &Request{UserID: 42, Address: "такого адреса нет"})
	require.ErrorIs(t, err, ErrAddressNotFound)

	// Провал сбрасывает прежнюю оценку
	require.Len(t, state.completed, 1)
	assert.Nil(t, state.completed[0])
}

func TestExecute_GeocoderUnavailable(t *testing.T) {
	geo := &fakeGeocoder{err: geocoder.ErrUnavailable}

	_, err := newUC(geo, &fakeState{}).Execute(context.Background(), &Request{UserID: 42, Address: "адрес"})
	require.ErrorIs(t, err, ErrGeocoderUnavailable)
}

func TestExecute_SupersededResultDiscarded(t *testing.T) {
	geo := &fakeGeocoder{point: &geocoder.Point{Latitude: 55.7601, Longitude: 37.6201}}
	state := &fakeState{stale: true}

	_, err := newUC(geo, state).Execute(context.Background(), &Request{UserID: 42, Address: "адрес"})
	require.ErrorIs(t, err, ErrSuperseded)
	assert.Empty(t, state.completed)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUC(&fakeGeocoder{}, &fakeState{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Address: "адрес"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 42, Address: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}
