package simplybook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// tokenLifetime is the session token validity window granted by the API.
const tokenLifetime = time.Hour

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config carries the credentials and endpoint of the scheduling system.
type Config struct {
	APIURL       string
	CompanyLogin string
	Login        string
	Password     string
}

// Client is an authenticated client for the SimplyBook admin API. The session
// token and its expiry live inside the client, constructed once per process
// and passed by reference to callers; callers never manage the token.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a new scheduling system client.
func NewClient(cfg Config, timeout time.Duration, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServices lists the bookable services.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := c.request(ctx, http.MethodGet, "/admin/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetProviders lists providers, optionally restricted to one service.
func (c *Client) GetProviders(ctx context.Context, serviceID string) ([]Provider, error) {
	endpoint := "/admin/providers"
	if serviceID != "" {
		endpoint = fmt.Sprintf("/admin/services/%s/providers", serviceID)
	}

	var providers []Provider
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetFreeTime lists the free start times ("HH:MM") for a service and provider
// on one date.
func (c *Client) GetFreeTime(ctx context.Context, serviceID, providerID, date string) ([]string, error) {
	endpoint := fmt.Sprintf("/admin/schedule/free-time/%s/%s/%s", serviceID, providerID, date)

	var times []string
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// GetDailyAvailability returns per-date availability flags for a date range
// (inclusive), keyed by YYYY-MM-DD.
func (c *Client) GetDailyAvailability(ctx context.Context, serviceID, providerID, startDate, endDate string) (map[string]bool, error) {
	endpoint := fmt.Sprintf("/admin/schedule/daily-available/%s/%s/%s/%s", serviceID, providerID, startDate, endDate)

	var availability map[string]bool
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &availability); err != nil {
		return nil, err
	}
	return availability, nil
}

// CreateBooking creates a booking in the scheduling system.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	payload := wireCreateBooking{
		ServiceID:  req.ServiceID,
		ProviderID: req.ProviderID,
		DateTime:   req.DateTime,
		Client: wireClient{
			Name:  req.ClientName,
			Email: req.ClientEmail,
			Phone: req.ClientPhone,
		},
		Additional: req.Additional,
	}

	var booking wireBooking
	if err := c.request(ctx, http.MethodPost, "/admin/bookings", payload, &booking); err != nil {
		return nil, err
	}
	return fromWireBooking(&booking), nil
}

// CancelBooking cancels a booking by id.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/admin/bookings/%s", bookingID), nil, nil)
}

// GetBooking fetches a booking by id.
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	var booking wireBooking
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/admin/bookings/%s", bookingID), nil, &booking); err != nil {
		return nil, err
	}
	return fromWireBooking(&booking), nil
}

// authenticate logs in and stores a fresh token. Callers hold c.mu.
func (c *Client) authenticate(ctx context.Context) error {
	body, err := json.Marshal(loginRequest{
		Company:  c.cfg.CompanyLogin,
		Login:    c.cfg.Login,
		Password: c.cfg.Password,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode login request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create login request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: login request failed: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: login returned status %d", ErrAuthFailed, resp.StatusCode)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("%w: failed to decode login response: %v", ErrAuthFailed, err)
	}

	c.token = login.Token
	c.tokenExpiry = time.Now().Add(tokenLifetime)
	c.log.Info("authenticate: obtained session token, valid until %s", c.tokenExpiry.Format(time.RFC3339))
	return nil
}

// currentToken returns a valid token, re-authenticating when missing or
// expired.
func (c *Client) currentToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || time.Now().After(c.tokenExpiry) {
		if err := c.authenticate(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// invalidateToken drops the cached token so the next call re-authenticates.
func (c *Client) invalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// request performs one authenticated API call, decoding the response into out
// when non-nil. A 401 triggers exactly one transparent re-authentication and
// retry; a second 401 propagates as an auth failure.
func (c *Client) request(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	resp, err := c.do(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.log.Warn("request: token rejected for %s %s, re-authenticating once", method, endpoint)
		c.invalidateToken()

		resp, err = c.do(ctx, method, endpoint, payload)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			return fmt.Errorf("%w: still unauthorized after re-authentication", ErrAuthFailed)
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrBookingNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}) (*http.Response, error) {
	token, err := c.currentToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("X-Company-Login", c.cfg.CompanyLogin)
	req.Header.Set("X-Token", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}
