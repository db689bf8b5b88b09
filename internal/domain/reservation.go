package domain

import "time"

// ReservationStatus статус брони самовывоза
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationItem одна позиция брони
type ReservationItem struct {
	Name      string
	Quantity  int
	UnitPrice int
}

// Subtotal returns quantity * unit price for the item
func (i ReservationItem) Subtotal() int {
	return i.Quantity * i.UnitPrice
}

// ReservationCandidate represents a reservation eligible for conversion into
// a courier delivery. Read-only snapshot for the duration of the checkout:
// never mutated, only filtered and selected.
type ReservationCandidate struct {
	DisplayCode       string
	UserID            int64
	Status            ReservationStatus
	ReservedDate      time.Time
	Items             []ReservationItem
	DeliveryAvailable bool
	DeliveryClaimed   bool
}

// Amount returns the sum of item subtotals
func (r *ReservationCandidate) Amount() int {
	total := 0
	for _, item := range r.Items {
		total += item.Subtotal()
	}
	return total
}

// IsSelectable returns true when the reservation can be picked for delivery:
// today's, still pending, delivery-eligible and not already claimed
func (r *ReservationCandidate) IsSelectable(today time.Time) bool {
	y1, m1, d1 := r.ReservedDate.Date()
	y2, m2, d2 := today.Date()
	sameDay := y1 == y2 && m1 == m2 && d1 == d2
	return sameDay &&
		r.Status == ReservationPending &&
		r.DeliveryAvailable &&
		!r.DeliveryClaimed
}

// SelectedAmount суммирует позиции по выбранным displayCode
// Неизвестные коды игнорируются: валидация выбора выполняется отдельно
func SelectedAmount(candidates []*ReservationCandidate, selected []string) int {
	byCode := make(map[string]*ReservationCandidate, len(candidates))
	for _, c := range candidates {
		byCode[c.DisplayCode] = c
	}

	total := 0
	for _, code := range selected {
		if c, ok := byCode[code]; ok {
			total += c.Amount()
		}
	}
	return total
}
