package pendingorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/psqlbuilder"
)

// Repository репозиторий платёжных заявок доставки
// Хранит pending-заявки для реконсиляции брошенных попыток оплаты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платёжных заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о инициированной платёжной заявке
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, order *domain.DeliveryOrder) (*domain.DeliveryOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("delivery_orders").
		Columns(
			"order_code",
			"user_id",
			"reservation_codes",
			"amount",
			"fee",
			"status",
			"scheduled_hour",
			"scheduled_minute",
		).
		Values(
			order.OrderCode,
			order.UserID,
			pq.Array(order.ReservationCodes),
			order.Amount,
			order.Fee,
			order.Status,
			order.ScheduledHour,
			order.ScheduledMinute,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByOrderCode получает заявку по коду заказа
func (r *Repository) GetByOrderCode(ctx context.Context, orderCode string) (*domain.DeliveryOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectOrderColumns().
		Where(squirrel.Eq{"order_code": orderCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderCode - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderCode - scan row: %v", ErrScanRow, err)
	}

	return order, nil
}

// GetPendingByUser получает незавершённые заявки пользователя
// Используется для проактивной отмены брошенных попыток при следующем визите
func (r *Repository) GetPendingByUser(ctx context.Context, userID int64) ([]*domain.DeliveryOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectOrderColumns().
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  domain.OrderPaymentPending,
		}).
		OrderBy("created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.DeliveryOrder, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetPendingByUser - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPendingByUser - rows iteration: %v", ErrScanRow, err)
	}

	return orders, nil
}

// UpdateStatus обновляет статус заявки по коду заказа
func (r *Repository) UpdateStatus(ctx context.Context, orderCode string, status domain.DeliveryOrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("delivery_orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"order_code": orderCode}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// rowScanner абстракция над *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func selectOrderColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"order_code",
		"user_id",
		"reservation_codes",
		"amount",
		"fee",
		"status",
		"scheduled_hour",
		"scheduled_minute",
		"created_at",
		"updated_at",
	).From("delivery_orders")
}

func scanOrder(row rowScanner) (*domain.DeliveryOrder, error) {
	var order domain.DeliveryOrder
	var codes pq.StringArray
	var scheduledHour, scheduledMinute sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.OrderCode,
		&order.UserID,
		&codes,
		&order.Amount,
		&order.Fee,
		&order.Status,
		&scheduledHour,
		&scheduledMinute,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.ReservationCodes = codes
	if scheduledHour.Valid {
		h := int(scheduledHour.Int64)
		order.ScheduledHour = &h
	}
	if scheduledMinute.Valid {
		m := int(scheduledMinute.Int64)
		order.ScheduledMinute = &m
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}
