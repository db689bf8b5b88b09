package get_server_time

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
)

// ServerTimeResponse HTTP response model
type ServerTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}

type Handler struct {
	clock  Clock
	logger Logger
}

func NewHandler(clock Clock, logger Logger) *Handler {
	return &Handler{
		clock:  clock,
		logger: logger,
	}
}

// Handle GET /api/v1/server-time
// Отдаёт серверное время в epoch millis: клиенты считают собственный offset
// и не зависят от локальных часов устройства
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ServerTimeResponse{
		ServerTime: h.clock.NowMillis(),
	})
}
