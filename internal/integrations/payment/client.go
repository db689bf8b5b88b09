package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс для метрик внешних вызовов
type MetricsCollector interface {
	ObserveExternal(target, status string, duration time.Duration)
}

const metricsTarget = "payment_gateway"

// Client клиент платёжного шлюза (инициация платежа)
// Захват и расчёты платежа - зона ответственности шлюза, сервис только
// инициирует (ready) и отменяет (cancel) платёжные заявки
type Client struct {
	baseURL    string
	httpClient *http.Client
	collector  MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL string, timeout time.Duration, collector MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		collector: collector,
		log:       log,
	}
}

// Ready инициирует платёж по заявке доставки
// Идемпотентность обеспечивается заголовком Idempotency-Key: повторы одной
// и той же логической попытки дедуплицируются на стороне шлюза.
// На 400 возвращает *RejectedError с дословным сообщением шлюза -
// это бизнес-отказ, а не сетевая ошибка, и он не ретраится
func (c *Client) Ready(ctx context.Context, req *ReadyRequest) (*ReadyResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/payments/ready", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.collector.ObserveExternal(metricsTarget, "error", time.Since(start))
		c.log.Error("payment: ready request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.collector.ObserveExternal(metricsTarget, statusLabel(resp.StatusCode), time.Since(start))

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			return nil, &RejectedError{Message: "платёж отклонён платёжным шлюзом"}
		}
		c.log.Warn("payment: ready rejected by gateway: %s", errResp.Message)
		return nil, &RejectedError{Message: errResp.Message}
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("payment: unexpected status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	// Парсим ответ
	var ready ReadyResponse
	if err := json.NewDecoder(resp.Body).Decode(&ready); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if ready.OrderCode == "" || ready.RedirectURL == "" {
		return nil, fmt.Errorf("%w: missing orderCode or redirectUrl", ErrInvalidResponse)
	}

	return &ready, nil
}

// Cancel отменяет платёжную заявку по коду заказа
// Используется best-effort для реконсиляции брошенных pending-заявок
func (c *Client) Cancel(ctx context.Context, orderCode string) error {
	url := fmt.Sprintf("%s/v1/payments/%s/cancel", c.baseURL, orderCode)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.collector.ObserveExternal(metricsTarget, "error", time.Since(start))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.collector.ObserveExternal(metricsTarget, statusLabel(resp.StatusCode), time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		// Заявка уже не существует - отмена достигла цели
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

func statusLabel(code int) string {
	if code >= http.StatusInternalServerError {
		return "error"
	}
	return "success"
}
