package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
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

const metricsTarget = "geocoder"

// Client клиент внешнего провайдера геокодирования
// Преобразует строку адреса в координаты (lat, lng)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	collector  MetricsCollector
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
func NewClient(baseURL, apiKey string, timeout time.Duration, collector MetricsCollector, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		collector: collector,
		log:       log,
	}
}

// Geocode резолвит адрес в координаты
// Возвращает ErrAddressNotFound, если провайдер не нашёл совпадений,
// и ErrUnavailable при недоступности провайдера - вызывающий код обязан
// сбросить устаревшую оценку расстояния, а не использовать её повторно
func (c *Client) Geocode(ctx context.Context, address string) (*Point, error) {
	reqURL := fmt.Sprintf("%s/geocode?query=%s", c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.collector.ObserveExternal(metricsTarget, "error", time.Since(start))
		c.log.Error("geocoder: request failed for address=%q: %v", address, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.collector.ObserveExternal(metricsTarget, statusLabel(resp.StatusCode), time.Since(start))

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAddressNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("geocoder: unexpected status %d for address=%q: %s", resp.StatusCode, address, string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	// Парсим ответ
	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(result.Documents) == 0 {
		c.log.Info("geocoder: no match for address=%q", address)
		return nil, ErrAddressNotFound
	}

	doc := result.Documents[0]
	return &Point{Latitude: doc.Latitude, Longitude: doc.Longitude}, nil
}

func statusLabel(code int) string {
	if code >= http.StatusInternalServerError {
		return "error"
	}
	return "success"
}
