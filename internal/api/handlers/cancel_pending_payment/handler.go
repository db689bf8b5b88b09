package cancel_pending_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	cancelPendingPayment "github.com/m04kA/SMC-DeliveryService/internal/usecase/cancel_pending_payment"
)

const (
	msgInvalidOrderCode = "не указан код заявки"
	msgOrderNotFound    = "заявка не найдена"
)

type Handler struct {
	useCase CancelPendingPaymentUseCase
	logger  Logger
}

func NewHandler(useCase CancelPendingPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/payments/{orderCode}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	orderCode := mux.Vars(r)["orderCode"]

	err := h.useCase.Execute(r.Context(), &cancelPendingPayment.Request{
		UserID:    userID,
		OrderCode: orderCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelPendingPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOrderCode)

		case errors.Is(err, cancelPendingPayment.ErrOrderNotFound):
			h.logger.Warn("POST /delivery/payments/cancel - Order not found: user_id=%d, order_code=%s", userID, orderCode)
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("POST /delivery/payments/cancel - Failed to cancel: user_id=%d, order_code=%s, error=%v",
				userID, orderCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /delivery/payments/cancel - Order cancelled: user_id=%d, order_code=%s", userID, orderCode)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
