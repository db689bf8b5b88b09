package timeservice

import (
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

const metricsTarget = "time_service"

// Client клиент источника доверенного времени платформы
type Client struct {
	baseURL    string
	httpClient *http.Client
	collector  MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента источника времени
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

// GetServerTime возвращает серверное время в миллисекундах epoch
// Одноразовый best-effort вызов при старте сервиса: при ошибке вызывающий
// код остаётся на локальных часах
func (c *Client) GetServerTime(ctx context.Context) (int64, error) {
	url := fmt.Sprintf("%s/v1/time", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.collector.ObserveExternal(metricsTarget, "error", time.Since(start))
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.collector.ObserveExternal(metricsTarget, statusLabel(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result serverTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.ServerTime <= 0 {
		return 0, fmt.Errorf("%w: non-positive server time %d", ErrInvalidResponse, result.ServerTime)
	}

	return result.ServerTime, nil
}

// serverTimeResponse ответ источника времени
type serverTimeResponse struct {
	ServerTime int64 `json:"serverTime"`
}

func statusLabel(code int) string {
	if code >= http.StatusInternalServerError {
		return "error"
	}
	return "success"
}
