package get_delivery_info

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	infoService "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo"
)

const msgInfoNotFound = "данные доставки ещё не сохранены"

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

// Handle GET /api/v1/delivery/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, infoService.ErrInfoNotFound):
			handlers.RespondNotFound(w, msgInfoNotFound)
		default:
			h.logger.Error("GET /delivery/info - Failed to get info: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
