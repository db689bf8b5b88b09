package payment

// ReadyRequest payload инициации платежа
type ReadyRequest struct {
	IdempotencyKey   string   `json:"-"` // передаётся заголовком Idempotency-Key
	ReservationCodes []string `json:"reservationCodes"`
	Amount           int      `json:"amount"`
	DeliveryFee      int      `json:"deliveryFee"`
	Phone            string   `json:"phone"`
	PostalCode       string   `json:"postalCode"`
	Address1         string   `json:"address1"`
	Address2         string   `json:"address2,omitempty"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	RequestHour      int      `json:"requestHour"`
	RequestMinute    int      `json:"requestMinute"`
	ScheduledHour    *int     `json:"scheduledHour,omitempty"`
	ScheduledMinute  *int     `json:"scheduledMinute,omitempty"`
}

// ReadyResponse ответ шлюза на инициацию платежа
type ReadyResponse struct {
	OrderCode         string `json:"orderCode"`
	RedirectURL       string `json:"redirectUrl"`
	MobileRedirectURL string `json:"mobileRedirectUrl,omitempty"`
}

// ErrorResponse модель ошибки шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
