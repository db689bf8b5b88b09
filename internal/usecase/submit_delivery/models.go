package submit_delivery

import "github.com/m04kA/SMC-DeliveryService/internal/domain"

// Request - запрос на создание платёжной заявки
type Request struct {
	UserID        int64
	UserAgent     string
	SelectedCodes []string
	DeliveryType  domain.DeliveryType
	Slot          *domain.ScheduledSlot
	Phone         string
	PostalCode    string
	Address1      string
	Address2      string
}

// Response - созданная заявка и адрес перехода на страницу оплаты
type Response struct {
	OrderCode       string
	Amount          int
	Fee             int
	RedirectKind    domain.RedirectKind
	RedirectURL     string
	FallbackURL     string
	FallbackDelayMs int
}
