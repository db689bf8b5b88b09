package submit_delivery

import (
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	submitDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/submit_delivery"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	SelectedCodes []string     `json:"selectedCodes"`
	DeliveryType  string       `json:"deliveryType"`
	Slot          *SlotRequest `json:"slot,omitempty"`
	Phone         string       `json:"phone"`
	PostalCode    string       `json:"postalCode"`
	Address1      string       `json:"address1"`
	Address2      string       `json:"address2,omitempty"`
}

// SlotRequest выбранный слот запланированной доставки
type SlotRequest struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// SubmitResponse HTTP response model
// Для mobileWithFallback клиент переходит по redirectUrl и через
// fallbackDelayMs показывает fallbackUrl, если deep-link не сработал
type SubmitResponse struct {
	OrderCode       string `json:"orderCode"`
	Amount          int    `json:"amount"`
	Fee             int    `json:"fee"`
	RedirectKind    string `json:"redirectKind"`
	RedirectURL     string `json:"redirectUrl"`
	FallbackURL     string `json:"fallbackUrl,omitempty"`
	FallbackDelayMs int    `json:"fallbackDelayMs,omitempty"`
}

// BlockedResponse ответ при неготовности заказа к отправке
type BlockedResponse struct {
	Error    string   `json:"error"`
	Blockers []string `json:"blockers"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitRequest) ToUseCaseRequest(userID int64, userAgent string) *submitDelivery.Request {
	req := &submitDelivery.Request{
		UserID:        userID,
		UserAgent:     userAgent,
		SelectedCodes: r.SelectedCodes,
		DeliveryType:  domain.DeliveryType(r.DeliveryType),
		Phone:         r.Phone,
		PostalCode:    r.PostalCode,
		Address1:      r.Address1,
		Address2:      r.Address2,
	}
	if r.Slot != nil {
		req.Slot = &domain.ScheduledSlot{Hour: r.Slot.Hour, Minute: r.Slot.Minute}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitDelivery.Response) *SubmitResponse {
	return &SubmitResponse{
		OrderCode:       resp.OrderCode,
		Amount:          resp.Amount,
		Fee:             resp.Fee,
		RedirectKind:    string(resp.RedirectKind),
		RedirectURL:     resp.RedirectURL,
		FallbackURL:     resp.FallbackURL,
		FallbackDelayMs: resp.FallbackDelayMs,
	}
}
