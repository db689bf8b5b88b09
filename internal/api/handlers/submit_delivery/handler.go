package submit_delivery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	submitDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/submit_delivery"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные данные запроса"
	msgNotEligible        = "заказ не готов к отправке"
	msgSubmitInFlight     = "заявка на оплату уже отправляется"
	msgGatewayDown        = "платёжный шлюз временно недоступен, попробуйте ещё раз"
	msgUnsafeRedirect     = "платёжный шлюз вернул некорректный ответ"
)

type Handler struct {
	useCase SubmitDeliveryUseCase
	logger  Logger
}

func NewHandler(useCase SubmitDeliveryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/submit - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, r.UserAgent()))
	if err != nil {
		var notEligible *submitDelivery.NotEligibleError
		var rejected *submitDelivery.PaymentRejectedError

		switch {
		case errors.Is(err, submitDelivery.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.As(err, &notEligible):
			h.logger.Warn("POST /delivery/submit - Not eligible: user_id=%d, blockers=%d", userID, len(notEligible.Blockers))
			handlers.RespondJSON(w, http.StatusConflict, &BlockedResponse{
				Error:    msgNotEligible,
				Blockers: notEligible.Blockers,
			})

		case errors.Is(err, submitDelivery.ErrSubmissionInFlight):
			handlers.RespondConflict(w, msgSubmitInFlight)

		// Сообщение шлюза отдаётся пользователю дословно
		case errors.As(err, &rejected):
			handlers.RespondBadRequest(w, rejected.Message)

		case errors.Is(err, submitDelivery.ErrPaymentUnavailable):
			h.logger.Error("POST /delivery/submit - Gateway unavailable: user_id=%d", userID)
			handlers.RespondUnavailable(w, msgGatewayDown)

		case errors.Is(err, submitDelivery.ErrUnsafeRedirect):
			h.logger.Error("POST /delivery/submit - Unsafe redirect rejected: user_id=%d", userID)
			handlers.RespondError(w, http.StatusBadGateway, msgUnsafeRedirect)

		default:
			h.logger.Error("POST /delivery/submit - Failed to submit: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /delivery/submit - Order created: user_id=%d, order_code=%s", userID, result.OrderCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
