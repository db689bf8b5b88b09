package estimate_delivery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	estimateDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/estimate_delivery"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAddress     = "некорректный адрес"
	msgAddressNotFound    = "адрес не найден"
	msgGeocoderDown       = "сервис геокодирования временно недоступен"
	msgSuperseded         = "адрес был изменён, повторите запрос"
)

// EstimateRequest HTTP request model
type EstimateRequest struct {
	Address string `json:"address"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distanceKm"`
	Fee        int     `json:"fee"`
	OutOfRange bool    `json:"outOfRange"`
}

type Handler struct {
	useCase EstimateDeliveryUseCase
	logger  Logger
}

func NewHandler(useCase EstimateDeliveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req EstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/estimate - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &estimateDelivery.Request{
		UserID:  userID,
		Address: req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, estimateDelivery.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAddress)

		case errors.Is(err, estimateDelivery.ErrAddressNotFound):
			h.logger.Warn("POST /delivery/estimate - Address not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgAddressNotFound)

		case errors.Is(err, estimateDelivery.ErrGeocoderUnavailable):
			h.logger.Error("POST /delivery/estimate - Geocoder unavailable: user_id=%d", userID)
			handlers.RespondUnavailable(w, msgGeocoderDown)

		case errors.Is(err, estimateDelivery.ErrSuperseded):
			handlers.RespondConflict(w, msgSuperseded)

		default:
			h.logger.Error("POST /delivery/estimate - Failed to estimate: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &EstimateResponse{
		Latitude:   result.Latitude,
		Longitude:  result.Longitude,
		DistanceKm: result.DistanceKm,
		Fee:        result.Fee,
		OutOfRange: result.OutOfRange,
	})
}
