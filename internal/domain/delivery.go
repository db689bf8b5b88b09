package domain

import (
	"strings"
	"time"
)

// DeliveryType способ доставки
type DeliveryType string

const (
	DeliveryImmediate DeliveryType = "immediate"
	DeliveryScheduled DeliveryType = "scheduled"
)

// IsValid returns true for a known delivery type
func (t DeliveryType) IsValid() bool {
	return t == DeliveryImmediate || t == DeliveryScheduled
}

// DeliveryConfig represents the same-day delivery configuration.
// Immutable per session once fetched; a hard-coded fallback (DefaultConfig)
// is used only until the real config is loaded.
type DeliveryConfig struct {
	ID                  int64
	Enabled             bool
	SchedulingSupported bool
	StoreLat            float64
	StoreLng            float64
	MaxDistanceKm       float64
	FeeDistanceKm       float64
	MinAmount           int
	FeeNear             int
	FeePer100m          int
	StartHour           int
	StartMinute         int
	EndHour             int
	EndMinute           int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultConfig returns the hard-coded fallback configuration
func DefaultConfig() *DeliveryConfig {
	return &DeliveryConfig{
		Enabled:             true,
		SchedulingSupported: true,
		StoreLat:            DefaultStoreLat,
		StoreLng:            DefaultStoreLng,
		MaxDistanceKm:       DefaultMaxDistanceKm,
		FeeDistanceKm:       DefaultFeeDistanceKm,
		MinAmount:           DefaultMinAmount,
		FeeNear:             DefaultFeeNear,
		FeePer100m:          DefaultFeePer100m,
		StartHour:           DefaultStartHour,
		StartMinute:         DefaultStartMinute,
		EndHour:             DefaultEndHour,
		EndMinute:           DefaultEndMinute,
	}
}

// StartMinutes returns the window start as minutes since midnight
func (c *DeliveryConfig) StartMinutes() int {
	return c.StartHour*60 + c.StartMinute
}

// EndMinutes returns the window end as minutes since midnight
func (c *DeliveryConfig) EndMinutes() int {
	return c.EndHour*60 + c.EndMinute
}

// WindowBounds returns the window start and end as "HH:MM" strings
func (c *DeliveryConfig) WindowBounds() (start, end string) {
	return formatMinutes(c.StartMinutes()), formatMinutes(c.EndMinutes())
}

// IsWindowValid проверяет инвариант start < end в пределах одного дня
func (c *DeliveryConfig) IsWindowValid() bool {
	return c.StartMinutes() < c.EndMinutes()
}

// DeliveryInfo contact and address data for a delivery.
// Created and edited by the user, persisted server-side, mutable across sessions.
// Address change invalidates any previously computed estimate.
type DeliveryInfo struct {
	UserID     int64
	Phone      string
	PostalCode string
	Address1   string
	Address2   string
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasContact returns true when the phone field is filled
func (d *DeliveryInfo) HasContact() bool {
	return strings.TrimSpace(d.Phone) != ""
}

// HasAddress returns true when the primary address field is filled
func (d *DeliveryInfo) HasAddress() bool {
	return strings.TrimSpace(d.Address1) != ""
}

// HasCoordinates returns true when the address has been geocoded
func (d *DeliveryInfo) HasCoordinates() bool {
	return d.Latitude != nil && d.Longitude != nil
}
