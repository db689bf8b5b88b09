package get_delivery_config

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// ConfigResponse HTTP response model
type ConfigResponse struct {
	Enabled             bool    `json:"enabled"`
	SchedulingSupported bool    `json:"schedulingSupported"`
	MinAmount           int     `json:"minAmount"`
	MaxDistanceKm       float64 `json:"maxDistanceKm"`
	FeeDistanceKm       float64 `json:"feeDistanceKm"`
	FeeNear             int     `json:"feeNear"`
	FeePer100m          int     `json:"feePer100m"`
	WindowStart         string  `json:"windowStart"`
	WindowEnd           string  `json:"windowEnd"`
}

type Handler struct {
	configService ConfigProvider
	logger        Logger
}

func NewHandler(configService ConfigProvider, logger Logger) *Handler {
	return &Handler{
		configService: configService,
		logger:        logger,
	}
}

// Handle GET /api/v1/delivery/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg := h.configService.GetConfig(r.Context())
	handlers.RespondJSON(w, http.StatusOK, fromDomainConfig(cfg))
}

func fromDomainConfig(cfg *domain.DeliveryConfig) *ConfigResponse {
	return &ConfigResponse{
		Enabled:             cfg.Enabled,
		SchedulingSupported: cfg.SchedulingSupported,
		MinAmount:           cfg.MinAmount,
		MaxDistanceKm:       cfg.MaxDistanceKm,
		FeeDistanceKm:       cfg.FeeDistanceKm,
		FeeNear:             cfg.FeeNear,
		FeePer100m:          cfg.FeePer100m,
		WindowStart:         fmt.Sprintf("%02d:%02d", cfg.StartHour, cfg.StartMinute),
		WindowEnd:           fmt.Sprintf("%02d:%02d", cfg.EndHour, cfg.EndMinute),
	}
}
