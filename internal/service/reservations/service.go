package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Service сервис чтения броней для потока доставки
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetTodayCandidates возвращает сегодняшние брони пользователя,
// пригодные для конвертации в доставку: pending, delivery-eligible
// и ещё не заявленные в доставку
func (s *Service) GetTodayCandidates(ctx context.Context, userID int64) ([]*domain.ReservationCandidate, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	dayStart := timeAtMidnight(now)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	all, err := s.reservationRepo.GetByUserAndDateRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetTodayCandidates: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetTodayCandidates - repository error: %v", ErrInternal, err)
	}

	candidates := make([]*domain.ReservationCandidate, 0, len(all))
	for _, c := range all {
		if c.IsSelectable(now) {
			candidates = append(candidates, c)
		}
	}

	s.logger.Info("GetTodayCandidates: user=%d, %d of %d reservations selectable",
		userID, len(candidates), len(all))
	return candidates, nil
}

func timeAtMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
