package profileservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с профильным сервисом (внешний identity provider)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента профильного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile получает профиль пользователя по ID
func (c *Client) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/profiles/%s", c.baseURL, userID)

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
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetProfileWithGracefulDegradation получает профиль с graceful degradation.
// При недоступности профильного сервиса возвращает ErrServiceDegraded —
// вызывающий код продолжает работу с нейтральными текстами уведомлений.
// ErrProfileNotFound пробрасывается как есть: это бизнес-ошибка, а не сбой.
func (c *Client) GetProfileWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := c.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			c.log.Info("No profile found for user_id=%s", userID)
			return nil, err
		}

		// Повышаем уровень до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ProfileService unavailable, applying graceful degradation for user_id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%s, error=%v", ErrServiceDegraded, userID, err)
	}

	return profile, nil
}
