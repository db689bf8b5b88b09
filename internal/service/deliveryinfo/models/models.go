package models

import "github.com/m04kA/SMC-DeliveryService/internal/domain"

// UpsertRequest запрос на сохранение данных доставки
type UpsertRequest struct {
	UserID     int64
	Phone      string
	PostalCode string
	Address1   string
	Address2   string
	Latitude   *float64
	Longitude  *float64
}

// InfoResponse данные доставки пользователя
type InfoResponse struct {
	Phone      string   `json:"phone"`
	PostalCode string   `json:"postalCode"`
	Address1   string   `json:"address1"`
	Address2   string   `json:"address2"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// FromDomainInfo конвертирует domain модель в ответ сервиса
func FromDomainInfo(info *domain.DeliveryInfo) *InfoResponse {
	return &InfoResponse{
		Phone:      info.Phone,
		PostalCode: info.PostalCode,
		Address1:   info.Address1,
		Address2:   info.Address2,
		Latitude:   info.Latitude,
		Longitude:  info.Longitude,
	}
}
