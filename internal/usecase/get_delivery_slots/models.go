package get_delivery_slots

// Request модель запроса состояния окна доставки и слотов
type Request struct{}

// Response состояние окна доставки на текущий момент
type Response struct {
	Enabled             bool   // Доставка включена конфигурацией
	SchedulingSupported bool   // Запланированная доставка поддерживается
	ImmediateOrderable  bool   // Немедленная доставка доступна прямо сейчас
	ScheduledOrderable  bool   // Запланированная доставка доступна прямо сейчас
	WindowStart         string // Начало окна доставки, HH:MM
	WindowEnd           string // Конец окна доставки, HH:MM
	Slots               []Slot // Все слоты дня с признаком доступности
}

// Slot слот запланированной доставки
type Slot struct {
	Hour      int    // Час границы слота
	Minute    int    // Минута границы слота
	RangeFrom string // Начало отображаемого интервала, HH:MM
	RangeTo   string // Конец отображаемого интервала, HH:MM
	Available bool   // Слот удовлетворяет минимальному времени до начала
}
