package cancel_pending_payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/infra/storage/pendingorder"
)

type fakeOrders struct {
	order *domain.DeliveryOrder

	statuses map[string]domain.DeliveryOrderStatus
}

func (f *fakeOrders) GetByOrderCode(_ context.Context, orderCode string) (*domain.DeliveryOrder, error) {
	if f.order == nil || f.order.OrderCode != orderCode {
		return nil, pendingorder.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, orderCode string, status domain.DeliveryOrderStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[string]domain.DeliveryOrderStatus)
	}
	f.statuses[orderCode] = status
	return nil
}

type fakeClaims struct {
	released [][]string
}

func (f *fakeClaims) SetDeliveryClaimed(_ context.Context, codes []string, claimed bool) error {
	if !claimed {
		f.released = append(f.released, codes)
	}
	return nil
}

type fakePayments struct {
	cancelErr error

	cancelled []string
}

func (f *fakePayments) Cancel(_ context.Context, orderCode string) error {
	f.cancelled = append(f.cancelled, orderCode)
	return f.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingOrder() *domain.DeliveryOrder {
	return &domain.DeliveryOrder{
		OrderCode:        "ORD-1001",
		UserID:           42,
		ReservationCodes: []string{"R-1", "R-2"},
		Status:           domain.OrderPaymentPending,
	}
}

func TestExecute_CancelsPendingOrder(t *testing.T) {
	orders := &fakeOrders{order: pendingOrder()}
	claims := &fakeClaims{}
	payments := &fakePayments{}
	uc := NewUseCase(orders, claims, payments, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 42, OrderCode: "ORD-1001"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ORD-1001"}, payments.cancelled)
	assert.Equal(t, domain.OrderCancelled, orders.statuses["ORD-1001"])
	require.Len(t, claims.released, 1)
	assert.Equal(t, []string{"R-1", "R-2"}, claims.released[0])
}

func TestExecute_GatewayFailureStillCancelsLocally(t *testing.T) {
	orders := &fakeOrders{order: pendingOrder()}
	payments := &fakePayments{cancelErr: errors.New("gateway down")}
	uc := NewUseCase(orders, &fakeClaims{}, payments, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 42, OrderCode: "ORD-1001"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, orders.statuses["ORD-1001"])
}

func TestExecute_ForeignOrderLooksMissing(t *testing.T) {
	orders := &fakeOrders{order: pendingOrder()}
	payments := &fakePayments{}
	uc := NewUseCase(orders, &fakeClaims{}, payments, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 77, OrderCode: "ORD-1001"})
	require.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, payments.cancelled)
}

func TestExecute_AlreadyCancelledIsIdempotent(t *testing.T) {
	order := pendingOrder()
	order.Status = domain.OrderCancelled
	orders := &fakeOrders{order: order}
	payments := &fakePayments{}
	uc := NewUseCase(orders, &fakeClaims{}, payments, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 42, OrderCode: "ORD-1001"})
	require.NoError(t, err)
	assert.Empty(t, payments.cancelled)
	assert.Empty(t, orders.statuses)
}

func TestExecute_UnknownOrder(t *testing.T) {
	uc := NewUseCase(&fakeOrders{}, &fakeClaims{}, &fakePayments{}, nopLogger{})

	err := uc.Execute(context.Background(), &Request{UserID: 42, OrderCode: "ORD-404"})
	require.ErrorIs(t, err, ErrOrderNotFound)
}
