package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

// Repository репозиторий броней самовывоза
// Для потока доставки брони - read-only snapshot: репозиторий их не мутирует
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserAndDateRange получает брони пользователя за период вместе с позициями
func (r *Repository) GetByUserAndDateRange(ctx context.Context, userID int64, fromDate, toDate time.Time) ([]*domain.ReservationCandidate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"display_code",
		"user_id",
		"status",
		"reserved_date",
		"delivery_available",
		"delivery_claimed",
	).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"reserved_date": fromDate}).
		Where(squirrel.LtOrEq{"reserved_date": toDate}).
		OrderBy("reserved_date", "display_code").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDateRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	candidates := make([]*domain.ReservationCandidate, 0)
	codes := make([]string, 0)

	for rows.Next() {
		var c domain.ReservationCandidate
		if err := rows.Scan(
			&c.DisplayCode,
			&c.UserID,
			&c.Status,
			&c.ReservedDate,
			&c.DeliveryAvailable,
			&c.DeliveryClaimed,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByUserAndDateRange - scan row: %v", ErrScanRow, err)
		}
		candidates = append(candidates, &c)
		codes = append(codes, c.DisplayCode)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDateRange - rows iteration: %v", ErrScanRow, err)
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	items, err := r.getItemsByCodes(ctx, executor, codes)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		c.Items = items[c.DisplayCode]
	}

	return candidates, nil
}

// getItemsByCodes получает позиции броней одним запросом, сгруппированные по коду
func (r *Repository) getItemsByCodes(ctx context.Context, executor dbmetrics.DBExecutor, codes []string) (map[string][]domain.ReservationItem, error) {
	query, args, err := psqlbuilder.Select(
		"reservation_code",
		"name",
		"quantity",
		"unit_price",
	).
		From("reservation_items").
		Where(squirrel.Eq{"reservation_code": codes}).
		OrderBy("reservation_code", "id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getItemsByCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItemsByCodes - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make(map[string][]domain.ReservationItem)
	for rows.Next() {
		var code string
		var item domain.ReservationItem
		if err := rows.Scan(&code, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: getItemsByCodes - scan row: %v", ErrScanRow, err)
		}
		items[code] = append(items[code], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItemsByCodes - rows iteration: %v", ErrScanRow, err)
	}

	return items, nil
}

// SetDeliveryClaimed помечает брони как заявленные в доставку
// Вызывается в транзакции оформления вместе с созданием платёжной заявки
func (r *Repository) SetDeliveryClaimed(ctx context.Context, codes []string, claimed bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("delivery_claimed", claimed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"display_code": codes}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDeliveryClaimed - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetDeliveryClaimed - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
