package deliveryinfo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

// Repository репозиторий контактных данных и адреса доставки пользователя
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория данных доставки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает последние сохранённые данные доставки пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.DeliveryInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"phone",
		"postal_code",
		"address1",
		"address2",
		"latitude",
		"longitude",
		"created_at",
		"updated_at",
	).
		From("delivery_info").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.DeliveryInfo
	var latitude, longitude sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.UserID,
		&info.Phone,
		&info.PostalCode,
		&info.Address1,
		&info.Address2,
		&latitude,
		&longitude,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
	}

	if latitude.Valid {
		info.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		info.Longitude = &longitude.Float64
	}
	info.CreatedAt = createdAt.Time
	info.UpdatedAt = updatedAt.Time

	return &info, nil
}

// Upsert сохраняет данные доставки пользователя (insert или update по user_id)
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Upsert(ctx context.Context, info *domain.DeliveryInfo) (*domain.DeliveryInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("delivery_info").
		Columns(
			"user_id",
			"phone",
			"postal_code",
			"address1",
			"address2",
			"latitude",
			"longitude",
		).
		Values(
			info.UserID,
			info.Phone,
			info.PostalCode,
			info.Address1,
			info.Address2,
			info.Latitude,
			info.Longitude,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			postal_code = EXCLUDED.postal_code,
			address1 = EXCLUDED.address1,
			address2 = EXCLUDED.address2,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	info.CreatedAt = createdAt.Time
	info.UpdatedAt = updatedAt.Time

	return info, nil
}
