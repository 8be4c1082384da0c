// Package httpclient is the JSON-over-HTTP client shared by the adapters that
// call external services. Every call goes through a per-service circuit
// breaker and every failure comes back as a *ports.ServiceError.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orderwizard/internal/core/ports"

	"github.com/sony/gobreaker"
)

const maxResponseBytes = 4 << 20

// Breaker defaults, shared by every service.
const (
	DefaultMaxRequests           uint32        = 3
	DefaultInterval              time.Duration = 60 * time.Second
	DefaultOpenTimeout           time.Duration = 30 * time.Second
	DefaultFailureThreshold      uint32        = 5
	DefaultFailureRatioThreshold float64       = 0.5
	DefaultMinRequestsToTrip     uint32        = 10
	DefaultRequestTimeout        time.Duration = 15 * time.Second
)

// Observer is told about every call and every breaker state change.
type Observer interface {
	ObserveCall(service, outcome string, elapsed time.Duration)
	SetBreakerState(service string, state gobreaker.State)
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, string, time.Duration) {}
func (nopObserver) SetBreakerState(string, gobreaker.State) {}

// Call outcomes reported to the Observer.
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Config describes one external service.
type Config struct {
	// Service names the service in errors, logs and metrics.
	Service string
	BaseURL string
	// Token is sent as a bearer token when set.
	Token string
	// Headers are added to every request.
	Headers map[string]string
	Timeout time.Duration
}

// Client calls one external service.
type Client struct {
	cfg      Config
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
	observer Observer
	logger   *slog.Logger
}

type Option func(*Client)

// WithObserver reports calls to o.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for cfg. A zero Timeout means DefaultRequestTimeout.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		observer: nopObserver{},
		logger:   slog.Default().With("component", "httpclient", "service", cfg.Service),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Service,
		MaxRequests: DefaultMaxRequests,
		Interval:    DefaultInterval,
		Timeout:     DefaultOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= DefaultFailureThreshold {
				return true
			}
			if counts.Requests >= DefaultMinRequestsToTrip {
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)
				return ratio >= DefaultFailureRatioThreshold
			}
			return false
		},
		// A refusal means the service is up and answering.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ports.ErrServiceRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			c.observer.SetBreakerState(name, to)
		},
	})

	return c
}

// Service is the configured service name.
func (c *Client) Service() string {
	return c.cfg.Service
}

// Do sends body as JSON to path and decodes a 2xx response into out. out may
// be nil to ignore the response body.
//
// Non-2xx responses become a *ports.ServiceError carrying the service's
// "message". 4xx answers other than 408 and 429 are rejections; everything
// else, including an open breaker, means the service is unavailable.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.send(ctx, method, path, body, out)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn("circuit breaker refused call", "path", path, "error", err)
		err = &ports.ServiceError{
			Service: c.cfg.Service,
			Message: fmt.Sprintf("%s is temporarily unavailable", c.cfg.Service),
			Cause:   err,
		}
	}

	c.observer.ObserveCall(c.cfg.Service, outcome(err), time.Since(start))
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", c.cfg.Service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", c.cfg.Service, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.ServiceError{Service: c.cfg.Service, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &ports.ServiceError{Service: c.cfg.Service, Status: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ports.ServiceError{
			Service:  c.cfg.Service,
			Status:   resp.StatusCode,
			Message:  errorMessage(raw, resp.StatusCode),
			Rejected: isRejection(resp.StatusCode),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return &ports.ServiceError{Service: c.cfg.Service, Status: resp.StatusCode, Message: "malformed response", Cause: err}
	}
	return nil
}

func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil && strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	return fmt.Sprintf("API request failed with status %d", status)
}

func isRejection(status int) bool {
	return status >= 400 && status < 500 &&
		status != http.StatusRequestTimeout && status != http.StatusTooManyRequests
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ports.ErrServiceRejected):
		return OutcomeRejected
	default:
		return OutcomeUnavailable
	}
}
