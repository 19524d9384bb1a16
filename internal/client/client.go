package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/primecore/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/primecore/internal/shared/id"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// Config configures a remote client
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Retries applies to transport errors only
	Retries int
	// RPS limits outgoing calls; zero means unlimited
	RPS     float64
	Breaker resilience.Settings
	Logger  *zap.Logger
}

// DefaultConfig returns the configuration primectl uses against baseURL
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Timeout: 60 * time.Second,
		Retries: 2,
		Breaker: resilience.Settings{
			Threshold: 5,
			Cooldown:  30 * time.Second,
		},
	}
}

// StatusError is returned when the server answers without a tool result
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// Client talks to a primecore server through a circuit breaker
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	breaker *resilience.Breaker
	logger  *zap.Logger
}

// New creates a client
func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Pooled transport tuned for a single upstream
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	r := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetTransport(retryClient.HTTPClient.Transport).
		SetLogger(logger.Sugar()).
		SetHeader("User-Agent", "primectl/1.0").
		SetHeader("Accept", "application/json")

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}

	settings := cfg.Breaker
	if settings.IsFailure == nil {
		settings.IsFailure = IsRemoteFailure
	}
	onChange := settings.OnStateChange
	settings.OnStateChange = func(from, to resilience.State) {
		logger.Warn("Circuit breaker state change",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		if onChange != nil {
			onChange(from, to)
		}
	}

	return &Client{
		resty:   r,
		limiter: rate.NewLimiter(limit, 1),
		breaker: resilience.NewBreaker(settings),
		logger:  logger,
	}
}

// IsRemoteFailure reports whether err means the server is unhealthy. Tool
// errors come back inside a Result and never reach here; a StatusError
// below 500 is a client mistake.
func IsRemoteFailure(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}

// BreakerState returns the current breaker state
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

// Execute runs a tool on the server. Tool failures are returned as a
// Result with Success false, not as an error.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	body := types.ExecuteRequest{ToolID: toolID, Params: params}
	if body.Params == nil {
		body.Params = map[string]interface{}{}
	}

	return resilience.Call(c.breaker, func() (*types.Result, error) {
		req, err := c.request(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := req.SetBody(body).Post("/services/execute")
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
		}

		var result types.Result
		if err := decode(resp.Body(), &result); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		return &result, nil
	})
}

// Services lists the services the server offers
func (c *Client) Services(ctx context.Context) ([]types.Service, error) {
	return resilience.Call(c.breaker, func() ([]types.Service, error) {
		req, err := c.request(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := req.Get("/services")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
		}

		var out struct {
			Services []types.Service `json:"services"`
		}
		if err := decode(resp.Body(), &out); err != nil {
			return nil, fmt.Errorf("decode services: %w", err)
		}
		return out.Services, nil
	})
}

// Health checks that the server is up
func (c *Client) Health(ctx context.Context) error {
	_, err := resilience.Call(c.breaker, func() (struct{}, error) {
		req, err := c.request(ctx)
		if err != nil {
			return struct{}{}, err
		}
		resp, err := req.Get("/health")
		if err != nil {
			return struct{}{}, err
		}
		if resp.IsError() {
			return struct{}{}, &StatusError{Code: resp.StatusCode(), Body: string(resp.Body())}
		}
		return struct{}{}, nil
	})
	return err
}

// request waits for the limiter and prepares a request carrying the trace
// context of ctx, starting a new trace when there is none
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if tracing.GetTraceID(ctx) == "" {
		ctx = tracing.WithTraceContext(ctx, id.NewTraceID(), id.NewSpanID())
	}
	headers := map[string]string{}
	tracing.InjectTraceContext(ctx, headers)

	c.logger.Debug("Remote call", zap.String("trace_id", headers[tracing.HeaderTraceID]))
	return c.resty.R().SetContext(ctx).SetHeaders(headers), nil
}

// decode keeps integers exact
func decode(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
