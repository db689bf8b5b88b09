package check_eligibility

import "github.com/m04kA/SMC-DeliveryService/internal/domain"

// Request модель запроса проверки готовности к отправке
type Request struct {
	UserID        int64                // ID пользователя
	SelectedCodes []string             // Выбранные displayCode броней
	DeliveryType  domain.DeliveryType  // Способ доставки
	Slot          *domain.ScheduledSlot // Выбранный слот (для scheduled)

	// SkipInFlight исключает условие "отправка уже выполняется"
	// Используется потоком отправки, который сам держит флаг на время вызова
	SkipInFlight bool
}

// Response результат агрегирования условий отправки
// Blockers собираются ВСЕ, без короткого замыкания: UI показывает
// каждую нерешённую проблему сразу
type Response struct {
	CanSubmit      bool     // Конъюнкция всех условий
	Blockers       []string // Человекочитаемые причины блокировки
	SelectedAmount int      // Сумма выбранных броней
	DeliveryFee    int      // Плата за доставку из последней оценки
	DistanceKm     float64  // Расстояние из последней оценки
	OutOfRange     bool     // Точка за пределами радиуса доставки
	MinAmount      int      // Порог минимальной суммы из конфигурации
}
