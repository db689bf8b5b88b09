package checkoutstate

import (
	"sync"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// userState эфемерное состояние сессии оформления одного пользователя
type userState struct {
	estimate *domain.DistanceEstimate

	// Монотонный счётчик поколений геокодирования: результат устаревшего
	// запроса, завершившегося после смены адреса, отбрасывается
	// (last-write-wins без счётчика - скрытая гонка)
	generation      uint64
	geocodeInFlight bool
	submitInFlight  bool
}

// Store in-memory per-user checkout session state.
// Ничего не персистит: оценка расстояния, флаги in-flight и поколение
// геокодирования живут только в памяти процесса.
type Store struct {
	mu    sync.Mutex
	users map[int64]*userState
}

// NewStore создает пустое хранилище состояния оформления
func NewStore() *Store {
	return &Store{users: make(map[int64]*userState)}
}

func (s *Store) state(userID int64) *userState {
	st, ok := s.users[userID]
	if !ok {
		st = &userState{}
		s.users[userID] = st
	}
	return st
}

// BeginGeocode помечает геокодирование in-flight и выдаёт номер поколения
func (s *Store) BeginGeocode(userID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	st.generation++
	st.geocodeInFlight = true
	return st.generation
}

// CompleteGeocode фиксирует результат геокодирования указанного поколения
// Возвращает false и ничего не меняет, если поколение устарело
// (после этого вызова уже начиналось новое геокодирование)
func (s *Store) CompleteGeocode(userID int64, generation uint64, estimate *domain.DistanceEstimate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if generation != st.generation {
		return false
	}

	st.estimate = estimate
	st.geocodeInFlight = false
	return true
}

// Estimate возвращает последнюю валидную оценку расстояния/платы
func (s *Store) Estimate(userID int64) (*domain.DistanceEstimate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok || st.estimate == nil {
		return nil, false
	}
	return st.estimate, true
}

// InvalidateEstimate сбрасывает оценку (смена адреса или конфигурации)
// Текущее in-flight геокодирование при этом устаревает: его результат
// будет отброшен проверкой поколения
func (s *Store) InvalidateEstimate(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	st.estimate = nil
	st.generation++
	st.geocodeInFlight = false
}

// TryBeginSubmit атомарно поднимает флаг отправки
// Возвращает false, если отправка этого пользователя уже выполняется
func (s *Store) TryBeginSubmit(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(userID)
	if st.submitInFlight {
		return false
	}
	st.submitInFlight = true
	return true
}

// EndSubmit снимает флаг отправки
// Вызывается в defer, чтобы UI не остался заблокированным после ошибки
func (s *Store) EndSubmit(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(userID).submitInFlight = false
}

// InFlight возвращает текущие флаги незавершённых операций пользователя
func (s *Store) InFlight(userID int64) (geocoding, submitting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.users[userID]
	if !ok {
		return false, false
	}
	return st.geocodeInFlight, st.submitInFlight
}
