package deliveryconfig

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	configRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/deliveryconfig"
)

// Service сервис конфигурации доставки
// Отдаёт актуальную конфигурацию из БД; пока реальная конфигурация не
// загружена (или строка отсутствует), используется hard-coded fallback
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации доставки
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetConfig возвращает актуальную конфигурацию доставки
// Ошибки БД не пробрасываются наружу как фатальные: поток остаётся рабочим
// на дефолтной конфигурации, проблема логируется
func (s *Service) GetConfig(ctx context.Context) *domain.DeliveryConfig {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetConfig: no config row, using defaults")
		} else {
			s.logger.Error("GetConfig: repository error, using defaults: %v", err)
		}
		return domain.DefaultConfig()
	}

	// Инвариант окна: start < end в пределах одного дня
	if !cfg.IsWindowValid() {
		s.logger.Error("GetConfig: invalid window %02d:%02d-%02d:%02d in config id=%d, using defaults",
			cfg.StartHour, cfg.StartMinute, cfg.EndHour, cfg.EndMinute, cfg.ID)
		return domain.DefaultConfig()
	}

	return cfg
}
