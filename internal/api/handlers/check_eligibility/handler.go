package check_eligibility

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	checkEligibility "github.com/m04kA/SMC-DeliveryService/internal/usecase/check_eligibility"
)

const msgInvalidRequestBody = "некорректное тело запроса"

// EligibilityRequest HTTP request model
type EligibilityRequest struct {
	SelectedCodes []string     `json:"selectedCodes"`
	DeliveryType  string       `json:"deliveryType"`
	Slot          *SlotRequest `json:"slot,omitempty"`
}

// SlotRequest выбранный слот запланированной доставки
type SlotRequest struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// EligibilityResponse HTTP response model
// Blockers перечисляет ВСЕ нерешённые условия: UI показывает их одновременно
type EligibilityResponse struct {
	CanSubmit      bool     `json:"canSubmit"`
	Blockers       []string `json:"blockers"`
	SelectedAmount int      `json:"selectedAmount"`
	DeliveryFee    int      `json:"deliveryFee"`
	DistanceKm     float64  `json:"distanceKm"`
	OutOfRange     bool     `json:"outOfRange"`
	MinAmount      int      `json:"minAmount"`
}

type Handler struct {
	useCase CheckEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/delivery/eligibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req EligibilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /delivery/eligibility - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &checkEligibility.Request{
		UserID:        userID,
		SelectedCodes: req.SelectedCodes,
		DeliveryType:  domain.DeliveryType(req.DeliveryType),
	}
	if req.Slot != nil {
		useCaseReq.Slot = &domain.ScheduledSlot{Hour: req.Slot.Hour, Minute: req.Slot.Minute}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("POST /delivery/eligibility - Failed to check: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	blockers := result.Blockers
	if blockers == nil {
		blockers = []string{}
	}

	handlers.RespondJSON(w, http.StatusOK, &EligibilityResponse{
		CanSubmit:      result.CanSubmit,
		Blockers:       blockers,
		SelectedAmount: result.SelectedAmount,
		DeliveryFee:    result.DeliveryFee,
		DistanceKm:     result.DistanceKm,
		OutOfRange:     result.OutOfRange,
		MinAmount:      result.MinAmount,
	})
}
