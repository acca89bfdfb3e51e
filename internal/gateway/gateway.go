// Package gateway is the client for the upstream backend that owns account,
// AI-configuration, and tariff storage. Every call is a single pass-through
// request: no retries, no local state. A transport failure is returned as an
// error; any decoded response, success or not, is returned as a Result for
// the caller to relay.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"github.com/savdoai/console-api/config"
	apperrors "github.com/savdoai/console-api/pkg/errors"
	"github.com/savdoai/console-api/pkg/httpclient"
	"github.com/savdoai/console-api/pkg/logger"
	"github.com/savdoai/console-api/pkg/metrics"

	"github.com/savdoai/console-api/internal/models"
)

// Envelope is the JSON body shape shared by all backend endpoints. Unknown
// fields are dropped; User, Errors, and Data are kept raw for verbatim relay.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
}

// Result is a decoded backend response.
type Result struct {
	StatusCode int
	Body       Envelope
}

// OK reports whether the backend accepted the request: a 2xx status AND a
// success-true body. Anything else is relayed to the client as a rejection.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300 && r.Body.Success
}

// BackendGateway defines the upstream operations used by the services.
type BackendGateway interface {
	Register(ctx context.Context, sub *models.RegistrationSubmission) (*Result, error)
	Login(ctx context.Context, sub *models.LoginSubmission) (*Result, error)
	SaveAIConfig(ctx context.Context, sub *models.AIConfigSubmission, authToken string) (*Result, error)
	ListTariffs(ctx context.Context) (*Result, error)
}

// Client is the HTTP implementation of BackendGateway.
type Client struct {
	cfg        config.BackendConfig
	httpClient httpclient.Client
}

// NewClient creates a backend gateway client
func NewClient(cfg config.BackendConfig, httpClient httpclient.Client) *Client {
	return &Client{cfg: cfg, httpClient: httpClient}
}

// Register forwards a normalized registration submission
func (c *Client) Register(ctx context.Context, sub *models.RegistrationSubmission) (*Result, error) {
	return c.call(ctx, "register", http.MethodPost, "/api/register", sub, "")
}

// Login forwards a credential pair
func (c *Client) Login(ctx context.Context, sub *models.LoginSubmission) (*Result, error) {
	return c.call(ctx, "login", http.MethodPost, "/api/login", sub, "")
}

// SaveAIConfig forwards an AI configuration with the caller's bearer token
func (c *Client) SaveAIConfig(ctx context.Context, sub *models.AIConfigSubmission, authToken string) (*Result, error) {
	return c.call(ctx, "ai_config", http.MethodPost, "/api/ai-config", sub, authToken)
}

// ListTariffs fetches the tariff plan list
func (c *Client) ListTariffs(ctx context.Context) (*Result, error) {
	return c.call(ctx, "tariffs", http.MethodGet, "/api/tariffs", nil, "")
}

func (c *Client) call(ctx context.Context, operation, method, path string, payload any, authToken string) (*Result, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", operation, err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error", start)
		return nil, apperrors.BackendUnreachable(operation, err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// An unparseable body is indistinguishable from a dead backend for
		// our callers: surface it the same way as a transport failure.
		c.record(operation, "error", start)
		return nil, apperrors.MalformedResponse(operation, err)
	}

	status := "success"
	if !env.Success {
		status = "rejected"
	}
	c.record(operation, status, start)

	return &Result{StatusCode: resp.StatusCode, Body: env}, nil
}

func (c *Client) record(operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.BackendRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.BackendRequestTotal.WithLabelValues(operation, status).Inc()
	logger.LogAPICall("backend", operation, status, duration)
}

// NetworkErrorMessage maps a transport failure to the localized message
// shown to users. A refused connection gets the blunter "backend is down"
// wording the frontend expects during local development.
func NetworkErrorMessage(err error) string {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return models.MsgBackendDown
	}
	return models.MsgBackendUnreachable
}
