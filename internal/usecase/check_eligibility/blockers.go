package check_eligibility

// Человекочитаемые причины блокировки отправки
// Каждое условие агрегатора имеет собственное сообщение
const (
	BlockerDeliveryDisabled  = "доставка сейчас отключена"
	BlockerNoSelection       = "не выбрана ни одна бронь"
	BlockerMissingPhone      = "не указан телефон"
	BlockerMissingAddress    = "не указан адрес доставки"
	BlockerNoEstimate        = "стоимость доставки не рассчитана для текущего адреса"
	BlockerOutOfRange        = "адрес за пределами зоны доставки"
	BlockerBelowMinAmount    = "сумма заказа меньше минимальной для доставки"
	BlockerBeforeWindowStart = "приём заказов на доставку ещё не начался"
	BlockerAfterWindowEnd    = "приём заказов на доставку на сегодня завершён"
	BlockerNoSlotChosen      = "не выбран слот запланированной доставки"
	BlockerUnknownSlot       = "выбранный слот недоступен"
	BlockerGeocodeInFlight   = "дождитесь завершения расчёта стоимости доставки"
	BlockerSubmitInFlight    = "отправка уже выполняется"
)
