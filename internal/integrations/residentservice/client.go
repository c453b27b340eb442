package residentservice

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

// Client клиент для работы с ResidentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ResidentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetResident получает жителя по ID
func (c *Client) GetResident(ctx context.Context, userID int64) (*Resident, error) {
	url := fmt.Sprintf("%s/internal/residents/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid resident ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrResidentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var resident Resident
	if err := json.NewDecoder(resp.Body).Decode(&resident); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &resident, nil
}

// GetResidentWithGracefulDegradation получает жителя с graceful degradation
// При недоступности ResidentService возвращает ErrServiceDegraded:
// вызывающий код может продолжить без денормализованных данных жителя
func (c *Client) GetResidentWithGracefulDegradation(ctx context.Context, userID int64) (*Resident, error) {
	resident, err := c.GetResident(ctx, userID)
	if err != nil {
		// Бизнес-ошибку (житель не найден) пробрасываем дальше
		if err == ErrResidentNotFound {
			c.log.Info("No resident found for user_id=%d", userID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("ResidentService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	return resident, nil
}
