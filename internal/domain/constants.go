package domain

// Default delivery configuration values
// Используются как hard-coded fallback, пока реальная конфигурация не загружена из БД
const (
	DefaultStoreLat      = 55.751244
	DefaultStoreLng      = 37.618423
	DefaultMaxDistanceKm = 3.0
	DefaultFeeDistanceKm = 1.0
	DefaultMinAmount     = 15000
	DefaultFeeNear       = 3000
	DefaultFeePer100m    = 100
	DefaultStartHour     = 12
	DefaultStartMinute   = 0
	DefaultEndHour       = 19
	DefaultEndMinute     = 30
)

// Time-window policy constants
const (
	// SlotStepMinutes шаг слотов запланированной доставки
	SlotStepMinutes = 60

	// MinLeadTimeMinutes минимальное время до начала слота при заказе
	MinLeadTimeMinutes = 60

	// ScheduledCutoffBeforeEndMinutes запланированные заказы закрываются
	// за час до дедлайна немедленной доставки: последний слот должен
	// успеть завершиться не позже конца окна
	ScheduledCutoffBeforeEndMinutes = 60
)

// Business validation constants
const (
	MaxAddressLength = 200
	MaxPhoneLength   = 20
)

// Payment protocol constants
const (
	// MobileFallbackDelayMs задержка, через которую клиент показывает
	// fallback на desktop/QR редирект, если deep-link не увёл из страницы
	MobileFallbackDelayMs = 2000
)
