package get_delivery_slots

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	getDeliverySlots "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Enabled             bool           `json:"enabled"`
	SchedulingSupported bool           `json:"schedulingSupported"`
	ImmediateOrderable  bool           `json:"immediateOrderable"`
	ScheduledOrderable  bool           `json:"scheduledOrderable"`
	WindowStart         string         `json:"windowStart"`
	WindowEnd           string         `json:"windowEnd"`
	Slots               []SlotResponse `json:"slots"`
}

// SlotResponse слот запланированной доставки
type SlotResponse struct {
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	RangeFrom string `json:"rangeFrom"`
	RangeTo   string `json:"rangeTo"`
	Available bool   `json:"available"`
}

type Handler struct {
	useCase GetDeliverySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDeliverySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/delivery/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context(), &getDeliverySlots.Request{})
	if err != nil {
		h.logger.Error("GET /delivery/slots - Failed to build slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}

func fromUseCaseResponse(resp *getDeliverySlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Hour:      s.Hour,
			Minute:    s.Minute,
			RangeFrom: s.RangeFrom,
			RangeTo:   s.RangeTo,
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		Enabled:             resp.Enabled,
		SchedulingSupported: resp.SchedulingSupported,
		ImmediateOrderable:  resp.ImmediateOrderable,
		ScheduledOrderable:  resp.ScheduledOrderable,
		WindowStart:         resp.WindowStart,
		WindowEnd:           resp.WindowEnd,
		Slots:               slots,
	}
}
