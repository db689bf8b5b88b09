package deliveryinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	infoRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/deliveryinfo"
	"github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
)

// Service сервис контактных данных и адреса доставки
type Service struct {
	infoRepo      InfoRepository
	checkoutState CheckoutState
	logger        Logger
}

// NewService создает новый экземпляр сервиса данных доставки
func NewService(infoRepo InfoRepository, checkoutState CheckoutState, logger Logger) *Service {
	return &Service{
		infoRepo:      infoRepo,
		checkoutState: checkoutState,
		logger:        logger,
	}
}

// Get получает последние сохранённые данные доставки пользователя
func (s *Service) Get(ctx context.Context, userID int64) (*models.InfoResponse, error) {
	info, err := s.infoRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, infoRepo.ErrInfoNotFound) {
			return nil, ErrInfoNotFound
		}
		s.logger.Error("Get: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainInfo(info), nil
}

// Upsert сохраняет данные доставки пользователя
// При изменении address1 ранее геокодированные координаты сбрасываются,
// а эфемерная оценка расстояния инвалидируется: адрес и оценка не должны
// разъезжаться
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.InfoResponse, error) {
	if err := validateUpsert(req); err != nil {
		s.logger.Warn("Upsert: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	info := &domain.DeliveryInfo{
		UserID:     req.UserID,
		Phone:      strings.TrimSpace(req.Phone),
		PostalCode: strings.TrimSpace(req.PostalCode),
		Address1:   strings.TrimSpace(req.Address1),
		Address2:   strings.TrimSpace(req.Address2),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	existing, err := s.infoRepo.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, infoRepo.ErrInfoNotFound) {
		s.logger.Error("Upsert: failed to load existing info for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	addressChanged := existing == nil || existing.Address1 != info.Address1
	if addressChanged && !info.HasCoordinates() {
		info.Latitude = nil
		info.Longitude = nil
	}
	if !addressChanged && !info.HasCoordinates() && existing != nil {
		// Адрес не менялся - сохраняем прежние координаты
		info.Latitude = existing.Latitude
		info.Longitude = existing.Longitude
	}

	saved, err := s.infoRepo.Upsert(ctx, info)
	if err != nil {
		s.logger.Error("Upsert: failed to save info for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	if addressChanged {
		s.checkoutState.InvalidateEstimate(req.UserID)
		s.logger.Info("Upsert: address changed for user=%d, estimate invalidated", req.UserID)
	}

	s.logger.Info("Upsert: delivery info saved for user=%d", req.UserID)
	return models.FromDomainInfo(saved), nil
}

func validateUpsert(req *models.UpsertRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address1) == "" {
		return fmt.Errorf("%w: address1 is required", ErrInvalidInput)
	}
	if len(req.Address1) > domain.MaxAddressLength || len(req.Address2) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", ErrInvalidInput)
	}
	return nil
}
