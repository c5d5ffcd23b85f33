package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/storeadmin/internal/logging"
	"github.com/muurk/storeadmin/internal/urls"
)

const (
	// DefaultBaseURL is where a locally running dashboard serves its API
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries a per-request UUID for log correlation
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody caps how much of a failed response body ends up in an error
	maxErrorBody = 512
)

// Client is a thin HTTP client for the storefront admin API.
// It never retries: every failure is returned to the caller once.
type Client struct {
	// BaseURL is the API origin (e.g., "http://localhost:3000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request when non-empty
	UserAgent string

	logger *zap.Logger
}

// NewClient creates a client for the admin API at baseURL.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  "storeadmin",
		logger:     logging.GetLogger(),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetLogger overrides the logger used for request diagnostics
func (c *Client) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// UpdateStore sends PATCH /api/stores/{storeID} with a JSON label body.
// Any 2xx response is success.
func (c *Client) UpdateStore(ctx context.Context, storeID string, update *LabelUpdate) error {
	return c.do(ctx, http.MethodPatch, urls.StoreResource(storeID), update)
}

// DeleteStore sends DELETE /api/stores/{storeID}.
// Any 2xx response is success.
func (c *Client) DeleteStore(ctx context.Context, storeID string) error {
	return c.do(ctx, http.MethodDelete, urls.StoreResource(storeID), nil)
}

// do performs a single request and maps every failure onto *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) error {
	var (
		reader  io.Reader
		bodyLen int
	)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newEncodeError(method, path, err)
		}
		reader = bytes.NewReader(data)
		bodyLen = len(data)
	}

	endpoint := urls.Join(c.BaseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return newEncodeError(method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.LogAPIRequest(c.log(), requestID, method, endpoint, bodyLen)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log().Warn("API request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Error(err),
		)
		return newNetworkError(method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogAPIResponse(c.log(), requestID, method, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newHTTPError(method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) log() *zap.Logger {
	if c.logger == nil {
		return logging.GetLogger()
	}
	return c.logger
}
