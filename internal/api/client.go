package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SMSLogsPath is the endpoint listing SMS log records
const SMSLogsPath = "/api/payments/sms-logs/"

// Config holds the API client configuration
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// DefaultConfig returns a config with an empty base URL and the default timeout
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Client performs authenticated requests against the payments API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures Client behavior
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new API client. The base URL is expected to be
// normalized already (no trailing slash); an empty one fails at request time.
func NewClient(cfg Config, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// endpoint joins the base URL and path and rejects relative results
func (c *Client) endpoint(path string) (string, error) {
	full := c.baseURL + path
	u, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("invalid API URL %q: %w", full, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrNoBaseURL
	}
	return full, nil
}

// getRaw sends a GET request and returns the body of a 2xx response.
// Non-2xx responses become *APIError.
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	fullURL, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log := c.log.WithFields(logrus.Fields{"request_id": requestID, "url": fullURL})
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("request done")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
