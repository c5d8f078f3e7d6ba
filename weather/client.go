package weather

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// EndpointPath is where the backend serves lookups
const EndpointPath = "/api/weather"

// maxResponseSize bounds how much of a response body is read
const maxResponseSize = 1 << 20

// ErrMalformedResponse is returned when the response body is not JSON
var ErrMalformedResponse = errors.New("malformed weather response")

// Query is the request body sent for one lookup
type Query struct {
	City      string `json:"city"`
	Timestamp int64  `json:"timestamp"`
}

// NewQuery stamps a lookup with the submit time in unix seconds
func NewQuery(city string, now time.Time) Query {
	return Query{City: city, Timestamp: now.Unix()}
}

// Logger receives one line per field of every response
type Logger func(format string, args ...any)

type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logf       Logger
}

// NewClient creates a client for the backend at baseURL. A zero timeout
// leaves lookups unbounded.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("weather backend URL is empty")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather backend URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid weather backend URL %q: scheme must be http or https", baseURL)
	}

	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
	}, nil
}

// SetLogger routes response field logging; nil disables it
func (c *Client) SetLogger(logf Logger) {
	c.logf = logf
}

// URL returns the lookup endpoint
func (c *Client) URL() string {
	return c.baseURL + EndpointPath
}

// Lookup sends one POST and decodes whatever JSON comes back. The status
// code is not inspected and nothing is retried.
func (c *Client) Lookup(ctx context.Context, q Query) (*Report, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode weather query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	report, err := ParseReport(data)
	if err != nil {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, err)
	}

	if c.logf != nil {
		for _, key := range report.Keys() {
			c.logf("%s: %s", key, report.Field(key))
		}
	}

	return report, nil
}
