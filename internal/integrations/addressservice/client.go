package addressservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса адресов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса адресов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAddress получает адрес по почтовому индексу
func (c *Client) GetAddress(ctx context.Context, zipCode string) (*Address, error) {
	zip := NormalizeZipCode(zipCode)
	if zip == "" {
		return nil, ErrInvalidZipCode
	}

	endpoint := fmt.Sprintf("%s/%s/json", c.baseURL, url.PathEscape(zip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("GetAddress: request for zip=%s failed: %v", zip, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, ErrInvalidZipCode
	case http.StatusNotFound:
		return nil, ErrZipCodeNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var address Address
	if err := json.NewDecoder(resp.Body).Decode(&address); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if address.Erro {
		c.log.Warn("GetAddress: zip=%s not found", zip)
		return nil, ErrZipCodeNotFound
	}

	c.log.Info("GetAddress: resolved zip=%s to %s/%s", zip, address.City, address.State)
	return &address, nil
}

// NormalizeZipCode оставляет в индексе только цифры
func NormalizeZipCode(zipCode string) string {
	var b strings.Builder
	for _, r := range zipCode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
