package deliveryconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации доставки
// Конфигурация одна на сервис, хранится единственной актуальной строкой
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации доставки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает актуальную конфигурацию доставки
func (r *Repository) GetActive(ctx context.Context) (*domain.DeliveryConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"enabled",
		"scheduling_supported",
		"store_lat",
		"store_lng",
		"max_distance_km",
		"fee_distance_km",
		"min_amount",
		"fee_near",
		"fee_per_100m",
		"start_hour",
		"start_minute",
		"end_hour",
		"end_minute",
		"created_at",
		"updated_at",
	).
		From("delivery_config").
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.DeliveryConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Enabled,
		&cfg.SchedulingSupported,
		&cfg.StoreLat,
		&cfg.StoreLng,
		&cfg.MaxDistanceKm,
		&cfg.FeeDistanceKm,
		&cfg.MinAmount,
		&cfg.FeeNear,
		&cfg.FeePer100m,
		&cfg.StartHour,
		&cfg.StartMinute,
		&cfg.EndHour,
		&cfg.EndMinute,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
