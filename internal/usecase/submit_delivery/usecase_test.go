package submit_delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
	"github.com/m04kA/SMC-DeliveryService/internal/integrations/payment"
	infoModels "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo/models"
	checkEligibility "github.com/m04kA/SMC-DeliveryService/internal/usecase/check_eligibility"
)

type fakeChecker struct {
	resp *checkEligibility.Response
	err  error

	lastReq *checkEligibility.Request
}

func (f *fakeChecker) Execute(_ context.Context, req *checkEligibility.Request) (*checkEligibility.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeInfoService struct {
	upserts []*infoModels.UpsertRequest
	err     error
}

func (f *fakeInfoService) Upsert(_ context.Context, req *infoModels.UpsertRequest) (*infoModels.InfoResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserts = append(f.upserts, req)
	return &infoModels.InfoResponse{}, nil
}

type fakePayment struct {
	resp *payment.ReadyResponse
	// readyErrs отдаются по одному на вызов Ready, после исчерпания - успех
	readyErrs []error

	seenKeys  []string
	cancelled []string
	lastReq   *payment.ReadyRequest
}

func (f *fakePayment) Ready(_ context.Context, req *payment.ReadyRequest) (*payment.ReadyResponse, error) {
	f.seenKeys = append(f.seenKeys, req.IdempotencyKey)
	f.lastReq = req
	if len(f.readyErrs) > 0 {
		err := f.readyErrs[0]
		f.readyErrs = f.readyErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.resp, nil
}

func (f *fakePayment) Cancel(_ context.Context, orderCode string) error {
	f.cancelled = append(f.cancelled, orderCode)
	return nil
}

type fakeOrders struct {
	pending []*domain.DeliveryOrder

	created  []*domain.DeliveryOrder
	statuses map[string]domain.DeliveryOrderStatus
}

func (f *fakeOrders) Create(_ context.Context, order *domain.DeliveryOrder) (*domain.DeliveryOrder, error) {
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrders) GetPendingByUser(_ context.Context, _ int64) ([]*domain.DeliveryOrder, error) {
	return f.pending, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, orderCode string, status domain.DeliveryOrderStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[string]domain.DeliveryOrderStatus)
	}
	f.statuses[orderCode] = status
	return nil
}

type claimCall struct {
	codes   []string
	claimed bool
}

type fakeClaims struct {
	calls []claimCall
}

func (f *fakeClaims) SetDeliveryClaimed(_ context.Context, codes []string, claimed bool) error {
	f.calls = append(f.calls, claimCall{codes: codes, claimed: claimed})
	return nil
}

type fakeState struct {
	estimate *domain.DistanceEstimate
	busy     bool

	submitActive bool
}

func (f *fakeState) TryBeginSubmit(_ int64) bool {
	if f.busy || f.submitActive {
		return false
	}
	f.submitActive = true
	return true
}

func (f *fakeState) EndSubmit(_ int64) { f.submitActive = false }

func (f *fakeState) Estimate(_ int64) (*domain.DistanceEstimate, bool) {
	if f.estimate == nil {
		return nil, false
	}
	return f.estimate, true
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	checker  *fakeChecker
	info     *fakeInfoService
	payments *fakePayment
	orders   *fakeOrders
	claims   *fakeClaims
	state    *fakeState
}

func newFixture() *fixture {
	f := &fixture{
		checker: &fakeChecker{
			resp: &checkEligibility.Response{
				CanSubmit:      true,
				SelectedAmount: 27000,
				DeliveryFee:    3500,
				DistanceKm:     1.4,
				MinAmount:      15000,
			},
		},
		info: &fakeInfoService{},
		payments: &fakePayment{
			resp: &payment.ReadyResponse{
				OrderCode:         "ORD-1001",
				RedirectURL:       "https://pay.gateway.example/ready/ORD-1001",
				MobileRedirectURL: "gatewayapp://pay/ORD-1001",
			},
		},
		orders: &fakeOrders{},
		claims: &fakeClaims{},
		state: &fakeState{
			estimate: &domain.DistanceEstimate{
				Latitude:   55.7601,
				Longitude:  37.6201,
				DistanceKm: 1.4,
				Fee:        3500,
			},
		},
	}

	f.uc = NewUseCase(
		f.checker, f.info, f.payments, f.orders, f.claims, f.state,
		fakeTx{}, fixedTime{now: time.Date(2025, 6, 10, 14, 25, 0, 0, time.UTC)},
		[]string{"gateway.example"}, nopLogger{},
	)
	return f
}

func desktopRequest() *Request {
	return &Request{
		UserID:        42,
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		SelectedCodes: []string{"R-1", "R-2"},
		DeliveryType:  domain.DeliveryImmediate,
		Phone:         "01012345678",
		PostalCode:    "04524",
		Address1:      "ул. Тверская, д. 1",
		Address2:      "кв. 12",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), desktopRequest())
	require.NoError(t, err)

	assert.Equal(t, "ORD-1001", resp.OrderCode)
	assert.Equal(t, 27000, resp.Amount)
	assert.Equal(t, 3500, resp.Fee)
	assert.Equal(t, domain.RedirectDesktop, resp.RedirectKind)
	assert.Equal(t, "https://pay.gateway.example/ready/ORD-1001", resp.RedirectURL)
	assert.Empty(t, resp.FallbackURL)

	// Финальная проверка выполнена без условия "отправка уже выполняется"
	require.NotNil(t, f.checker.lastReq)
	assert.True(t, f.checker.lastReq.SkipInFlight)

	// Данные доставки сохранены до обращения в шлюз, с координатами оценки
	require.Len(t, f.info.upserts, 1)
	assert.Equal(t, 55.7601, *f.info.upserts[0].Latitude)

	// Pending-заказ зафиксирован, брони помечены
	require.Len(t, f.orders.created, 1)
	assert.Equal(t, domain.OrderPaymentPending, f.orders.created[0].Status)
	require.Len(t, f.claims.calls, 1)
	assert.Equal(t, claimCall{codes: []string{"R-1", "R-2"}, claimed: true}, f.claims.calls[0])

	// Время запроса из TimeProvider, не из часов процесса
	require.NotNil(t, f.payments.lastReq)
	assert.Equal(t, 14, f.payments.lastReq.RequestHour)
	assert.Equal(t, 25, f.payments.lastReq.RequestMinute)
	assert.Nil(t, f.payments.lastReq.ScheduledHour)
}

func TestExecute_MobileUserAgent(t *testing.T) {
	f := newFixture()

	req := desktopRequest()
	req.UserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.RedirectMobileWithFallback, resp.RedirectKind)
	assert.Equal(t, "gatewayapp://pay/ORD-1001", resp.RedirectURL)
	assert.Equal(t, "https://pay.gateway.example/ready/ORD-1001", resp.FallbackURL)
	assert.Equal(t, domain.MobileFallbackDelayMs, resp.FallbackDelayMs)
}

func TestExecute_NotEligible(t *testing.T) {
	f := newFixture()
	f.checker.resp = &checkEligibility.Response{
		CanSubmit: false,
		Blockers:  []string{"причина 1", "причина 2"},
	}

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrNotEligible)

	var notEligible *NotEligibleError
	require.ErrorAs(t, err, &notEligible)
	assert.Equal(t, []string{"причина 1", "причина 2"}, notEligible.Blockers)

	assert.Empty(t, f.payments.seenKeys, "шлюз не должен вызываться при блокировках")
	assert.Empty(t, f.orders.created)
}

func TestExecute_SubmitAlreadyInFlight(t *testing.T) {
	f := newFixture()
	f.state.busy = true

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Empty(t, f.payments.seenKeys)
}

// Транспортный сбой шлюза сохраняет idempotency-ключ: повтор уходит с тем же
// ключом, а после успеха следующая попытка получает свежий ключ
func TestExecute_IdempotencyKeyLifecycle(t *testing.T) {
	f := newFixture()
	f.payments.readyErrs = []error{payment.ErrUnavailable}

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrPaymentUnavailable)

	_, err = f.uc.Execute(context.Background(), desktopRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), desktopRequest())
	require.NoError(t, err)

	require.Len(t, f.payments.seenKeys, 3)
	assert.Equal(t, f.payments.seenKeys[0], f.payments.seenKeys[1], "повтор после сбоя реиспользует ключ")
	assert.NotEqual(t, f.payments.seenKeys[1], f.payments.seenKeys[2], "после успеха ключ свежий")
}

func TestExecute_GatewayRejection(t *testing.T) {
	f := newFixture()
	f.payments.readyErrs = []error{&payment.RejectedError{Message: "заказ содержит недоступную позицию"}}

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrPaymentRejected)

	// Сообщение шлюза отдаётся дословно
	var rejected *PaymentRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "заказ содержит недоступную позицию", rejected.Message)

	assert.Empty(t, f.orders.created)

	// Бизнес-отказ - settlement: следующая попытка идёт со свежим ключом
	_, err = f.uc.Execute(context.Background(), desktopRequest())
	require.NoError(t, err)
	require.Len(t, f.payments.seenKeys, 2)
	assert.NotEqual(t, f.payments.seenKeys[0], f.payments.seenKeys[1])
}

func TestExecute_UnsafeRedirectRejected(t *testing.T) {
	f := newFixture()
	f.payments.resp = &payment.ReadyResponse{
		OrderCode:   "ORD-6666",
		RedirectURL: "https://evil.example/phish",
	}

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrUnsafeRedirect)

	// Заказ не фиксируется, заявка в шлюзе отменяется
	assert.Empty(t, f.orders.created)
	assert.Empty(t, f.claims.calls)
	assert.Equal(t, []string{"ORD-6666"}, f.payments.cancelled)
}

func TestExecute_ReconcilesStalePending(t *testing.T) {
	f := newFixture()
	f.orders.pending = []*domain.DeliveryOrder{
		{
			OrderCode:        "ORD-0999",
			UserID:           42,
			ReservationCodes: []string{"R-OLD"},
			Status:           domain.OrderPaymentPending,
		},
	}

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.NoError(t, err)

	// Брошенная заявка отменена в шлюзе и в хранилище, пометка с броней снята
	assert.Contains(t, f.payments.cancelled, "ORD-0999")
	assert.Equal(t, domain.OrderCancelled, f.orders.statuses["ORD-0999"])
	require.NotEmpty(t, f.claims.calls)
	assert.Equal(t, claimCall{codes: []string{"R-OLD"}, claimed: false}, f.claims.calls[0])
}

func TestExecute_ScheduledSlotForwarded(t *testing.T) {
	f := newFixture()

	req := desktopRequest()
	req.DeliveryType = domain.DeliveryScheduled
	req.Slot = &domain.ScheduledSlot{Hour: 16, Minute: 0}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, f.orders.created, 1)
	require.NotNil(t, f.orders.created[0].ScheduledHour)
	assert.Equal(t, 16, *f.orders.created[0].ScheduledHour)
	assert.Equal(t, 0, *f.orders.created[0].ScheduledMinute)
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"без броней", func(r *Request) { r.SelectedCodes = nil }},
		{"без телефона", func(r *Request) { r.Phone = "" }},
		{"без адреса", func(r *Request) { r.Address1 = "" }},
		{"неизвестный тип", func(r *Request) { r.DeliveryType = "teleport" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := desktopRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EstimateLostAfterEligibility(t *testing.T) {
	f := newFixture()
	f.state.estimate = nil

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.payments.seenKeys)
}

func TestExecute_CheckerFailure(t *testing.T) {
	f := newFixture()
	f.checker.err = errors.New("database gone")

	_, err := f.uc.Execute(context.Background(), desktopRequest())
	require.ErrorIs(t, err, ErrInternal)
}
