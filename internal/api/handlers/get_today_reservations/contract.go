package get_today_reservations

import (
	"context"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ReservationsService интерфейс сервиса броней
type ReservationsService interface {
	GetTodayCandidates(ctx context.Context, userID int64) ([]*domain.ReservationCandidate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
