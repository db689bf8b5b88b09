package estimate_delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	geocoderClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/geocoder"
)

// UseCase use case оценки расстояния и платы за доставку по адресу
type UseCase struct {
	geocoder      GeocoderClient
	configService ConfigProvider
	checkoutState CheckoutState
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	geocoder GeocoderClient,
	configService ConfigProvider,
	checkoutState CheckoutState,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		geocoder:      geocoder,
		configService: configService,
		checkoutState: checkoutState,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute выполняет use case оценки доставки
// Побочных эффектов кроме сетевого вызова нет: чистая функция от входа,
// результат кешируется в состоянии сессии для агрегатора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimateDelivery: user=%d, address_len=%d", req.UserID, len(req.Address))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimateDelivery: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем поколение геокодирования
	// Если пока запрос в полёте адрес изменится ещё раз, наш результат устареет
	generation := uc.checkoutState.BeginGeocode(req.UserID)

	// 3. Резолвим адрес в координаты
	point, err := uc.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		// Провал геокодирования сбрасывает устаревшую оценку: UI не должен
		// показывать плату, посчитанную под прежний, уже невалидный адрес
		uc.checkoutState.CompleteGeocode(req.UserID, generation, nil)

		switch {
		case errors.Is(err, geocoderClient.ErrAddressNotFound):
			uc.logger.Warn("EstimateDelivery: address not found for user=%d", req.UserID)
			return nil, ErrAddressNotFound
		case errors.Is(err, geocoderClient.ErrUnavailable):
			uc.logger.Error("EstimateDelivery: geocoder unavailable for user=%d: %v", req.UserID, err)
			return nil, ErrGeocoderUnavailable
		default:
			uc.logger.Error("EstimateDelivery: geocode failed for user=%d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: geocode failed: %v", ErrInternal, err)
		}
	}

	// 4. Считаем расстояние и плату по тарифной сетке
	cfg := uc.configService.GetConfig(ctx)
	estimate := domain.NewDistanceEstimate(cfg, point.Latitude, point.Longitude, uc.timeProvider.Now())

	// 5. Фиксируем результат, отбрасывая устаревшие поколения
	if !uc.checkoutState.CompleteGeocode(req.UserID, generation, estimate) {
		uc.logger.Warn("EstimateDelivery: stale geocode result discarded for user=%d, generation=%d",
			req.UserID, generation)
		return nil, ErrSuperseded
	}

	uc.logger.Info("EstimateDelivery: user=%d, distance=%.3fkm, fee=%d, out_of_range=%t",
		req.UserID, estimate.DistanceKm, estimate.Fee, estimate.IsOutOfRange(cfg))

	return &Response{
		Latitude:   estimate.Latitude,
		Longitude:  estimate.Longitude,
		DistanceKm: estimate.DistanceKm,
		Fee:        estimate.Fee,
		OutOfRange: estimate.IsOutOfRange(cfg),
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}
	return nil
}
