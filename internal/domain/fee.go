package domain

import (
	"math"
	"time"
)

// earthRadiusKm средний радиус Земли
const earthRadiusKm = 6371.0

// feeStepKm шаг тарификации сверх ближней зоны (100 метров)
const feeStepKm = 0.1

// floatGuard guards против накопленной погрешности float при делении
// расстояния на шаг тарификации (0.2/0.1 == 2.0000000000000004)
const floatGuard = 1e-9

// HaversineKm returns the great-circle distance between two points in kilometers
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180.0 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DeliveryFee computes the delivery fee for a distance by the tiered schedule:
//   - distanceKm <= feeDistanceKm            -> feeNear
//   - otherwise                              -> feeNear + ceil(excess / 0.1km) * feePer100m
//
// Излишек округляется ВВЕРХ до следующих 100 метров: занижение платы -
// небезопасное направление округления
func DeliveryFee(cfg *DeliveryConfig, distanceKm float64) int {
	if distanceKm <= cfg.FeeDistanceKm {
		return cfg.FeeNear
	}

	excess := distanceKm - cfg.FeeDistanceKm
	units := int(math.Ceil(excess/feeStepKm - floatGuard))
	if units < 1 {
		units = 1
	}

	return cfg.FeeNear + units*cfg.FeePer100m
}

// DistanceEstimate derived distance/fee pair for a geocoded address.
// Never persisted; stale whenever the address or config changes until recomputed.
type DistanceEstimate struct {
	Latitude   float64
	Longitude  float64
	DistanceKm float64
	Fee        int
	ComputedAt time.Time
}

// NewDistanceEstimate computes the estimate for a geocoded point.
// Возвращается и для точек за пределами maxDistanceKm: плата считается
// для отображения, блокировка выполняется агрегатором
func NewDistanceEstimate(cfg *DeliveryConfig, lat, lng float64, now time.Time) *DistanceEstimate {
	distance := HaversineKm(cfg.StoreLat, cfg.StoreLng, lat, lng)
	return &DistanceEstimate{
		Latitude:   lat,
		Longitude:  lng,
		DistanceKm: distance,
		Fee:        DeliveryFee(cfg, distance),
		ComputedAt: now,
	}
}

// IsOutOfRange returns true when the point lies beyond the delivery radius
func (e *DistanceEstimate) IsOutOfRange(cfg *DeliveryConfig) bool {
	return e.DistanceKm > cfg.MaxDistanceKm
}
