package get_today_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ReservationResponse бронь, доступная для оформления доставки
type ReservationResponse struct {
	DisplayCode string         `json:"displayCode"`
	Amount      int            `json:"amount"`
	Items       []ItemResponse `json:"items"`
}

// ItemResponse позиция брони
type ItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Возвращает только сегодняшние pending брони, пригодные для доставки
// и ещё не занятые другой заявкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	candidates, err := h.service.GetTodayCandidates(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list candidates: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]ReservationResponse, 0, len(candidates))
	for _, c := range candidates {
		response = append(response, fromDomainCandidate(c))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromDomainCandidate(c *domain.ReservationCandidate) ReservationResponse {
	items := make([]ItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return ReservationResponse{
		DisplayCode: c.DisplayCode,
		Amount:      c.Amount(),
		Items:       items,
	}
}
