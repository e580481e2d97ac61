package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder записывает метрики обращений к релею.
// Допускает nil-реализацию (метрики выключены).
type MetricsRecorder interface {
	ObserveRelayRequest(operation, outcome string, seconds float64)
}

// Client клиент релея Google Apps Script, за которым стоит таблица
// бронирований. Чтение и запись авторизуются разными токенами.
type Client struct {
	scriptURL  string
	getToken   string
	postToken  string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента релея
func NewClient(scriptURL, getToken, postToken string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		scriptURL: scriptURL,
		getToken:  getToken,
		postToken: postToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRelayRequest(operation, outcome, time.Since(start).Seconds())
}

// FetchBookedDates получает из таблицы множество занятых дат в виде
// отсортированного списка ISO строк YYYY-MM-DD без дубликатов.
func (c *Client) FetchBookedDates(ctx context.Context) ([]string, error) {
	started := time.Now()

	readURL, err := url.Parse(c.scriptURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid script URL: %v", ErrInternal, err)
	}
	query := readURL.Query()
	query.Set("token", c.getToken)
	readURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("fetch_booked_dates", "error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("fetch_booked_dates", "error", started)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe("fetch_booked_dates", "error", started)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Релей может вернуть любую из исторических форм ответа; разбираем
	// как произвольный JSON и нормализуем. Ответ, не являющийся JSON,
	// трактуем как пустой список (в таблице нет ни одной брони).
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Warn("SheetsClient: response is not JSON, treating as empty booking list")
		c.observe("fetch_booked_dates", "ok", started)
		return []string{}, nil
	}

	dates := uniqueSorted(extractBookedDates(payload))
	c.observe("fetch_booked_dates", "ok", started)
	return dates, nil
}

// FetchBookedDatesWithGracefulDegradation получает занятые даты с graceful
// degradation: при недоступности релея возвращает ErrServiceDegraded, и
// вызывающая сторона считает множество занятых дат пустым (fail-open,
// календарь остаётся рабочим).
func (c *Client) FetchBookedDatesWithGracefulDegradation(ctx context.Context) ([]string, error) {
	dates, err := c.FetchBookedDates(ctx)
	if err != nil {
		// Повышаем уровень до ERROR, чтобы быстрее заметить проблему с релеем
		c.log.Error("SheetsClient: relay unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("SheetsClient: fetched %d booked dates", len(dates))
	return dates, nil
}

// SubmitBooking отправляет запись брони в таблицу через релей.
// Без ретраев: при ошибке вызывающая сторона показывает пользователю
// "submission failed, please retry", локальных изменений не происходит.
func (c *Client) SubmitBooking(ctx context.Context, booking *domain.Booking) error {
	started := time.Now()

	body, err := json.Marshal(submitPayload(booking, c.postToken))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.scriptURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("submit_booking", "error", started)
		return fmt.Errorf("%w: failed to execute request: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		c.observe("submit_booking", "error", started)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSubmitFailed, resp.StatusCode, string(respBody))
	}

	c.observe("submit_booking", "ok", started)
	c.log.Info("SheetsClient: booking submitted, date=%s, program=%s", booking.DateString(), booking.ProgramID)
	return nil
}
