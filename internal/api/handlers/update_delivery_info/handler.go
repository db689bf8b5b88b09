package update_delivery_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	infoService "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo"
	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInfo        = "некорректные данные доставки"
)

// UpdateInfoRequest HTTP request model
// Координаты клиент не передаёт: геокодирование выполняется сервисом
type UpdateInfoRequest struct {
	Phone      string `json:"phone"`
	PostalCode string `json:"postalCode"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
}

type Handler struct {
	service InfoService
	logger  Logger
}

func NewHandler(service InfoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/delivery/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /delivery/info - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &infoModels.UpsertRequest{
		UserID:     userID,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Address1:   req.Address1,
		Address2:   req.Address2,
	})
	if err != nil {
		switch {
		case errors.Is(err, infoService.ErrInvalidInput):
			h.logger.Warn("PUT /delivery/info - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInfo)
		default:
			h.logger.Error("PUT /delivery/info - Failed to save info: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /delivery/info - Info saved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
