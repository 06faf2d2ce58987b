// Package client talks to the RentX REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"rentx/internal/entities"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	ifMatchHeader        = "If-Match"
)

// NetworkError is returned for every failed remote call: transport errors,
// undecodable bodies and non-2xx answers alike.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) ListCars(ctx context.Context) ([]entities.CarDTO, error) {
	var cars []entities.CarDTO
	if err := c.do(ctx, "list cars", http.MethodGet, "/cars", nil, nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *Client) GetCar(ctx context.Context, carID string) (*entities.CarDTO, error) {
	var car entities.CarDTO
	if err := c.do(ctx, "get car", http.MethodGet, "/cars/"+url.PathEscape(carID), nil, nil, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (c *Client) GetScheduleByCar(ctx context.Context, carID string) (*entities.ScheduleByCar, error) {
	var schedule entities.ScheduleByCar
	if err := c.do(ctx, "get car schedule", http.MethodGet, "/schedules_bycars/"+url.PathEscape(carID), nil, nil, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpdateScheduleByCar writes the unavailable dates of schedule.ID. A non-nil
// version is sent as If-Match so a concurrent write makes this one fail.
func (c *Client) UpdateScheduleByCar(ctx context.Context, schedule entities.ScheduleByCar, version *int64) (*entities.ScheduleByCar, error) {
	headers := map[string]string{}
	if version != nil {
		headers[ifMatchHeader] = strconv.Quote(strconv.FormatInt(*version, 10))
	}
	body := entities.ScheduleByCar{ID: schedule.ID, UnavailableDates: schedule.UnavailableDates}

	var updated entities.ScheduleByCar
	if err := c.do(ctx, "update car schedule", http.MethodPut, "/schedules_bycars/"+url.PathEscape(schedule.ID), body, headers, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateUserSchedule posts a reservation. Repeating a call with the same
// idempotencyKey returns the reservation created by the first one.
func (c *Client) CreateUserSchedule(ctx context.Context, req entities.ScheduleByUserRequest, idempotencyKey string) (*entities.ScheduleByUser, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[idempotencyKeyHeader] = idempotencyKey
	}
	var created entities.ScheduleByUser
	if err := c.do(ctx, "create reservation", http.MethodPost, "/schedules_byuser", req, headers, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListUserSchedules(ctx context.Context, userID int64) ([]entities.ScheduleByUser, error) {
	path := "/schedules_byuser?user_id=" + strconv.FormatInt(userID, 10)
	var schedules []entities.ScheduleByUser
	if err := c.do(ctx, "list reservations", http.MethodGet, path, nil, nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (c *Client) Register(ctx context.Context, req entities.RegisterRequest) (*entities.UserResponse, error) {
	var user entities.UserResponse
	if err := c.do(ctx, "register", http.MethodPost, "/users", req, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	var resp entities.LoginResponse
	req := entities.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/sessions", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in interface{}, headers map[string]string, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		netErr := &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: readFailure(resp)}
		zap.S().Debugw("remote call failed", "op", op, "method", method, "path", path, "status", resp.StatusCode, "error", netErr.Err)
		return netErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// readFailure extracts the {"response": "..."} message the API writes on
// errors, falling back to the status text.
func readFailure(resp *http.Response) error {
	var failure struct {
		Response string `json:"response"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &failure); err == nil && failure.Response != "" {
		return fmt.Errorf("%s", failure.Response)
	}
	return fmt.Errorf("%s", http.StatusText(resp.StatusCode))
}
