package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves one monitor reading. *Client implements it; tests swap
// in fakes.
type Fetcher interface {
	FetchSample(ctx context.Context) (Sample, error)
}

var _ Fetcher = (*Client)(nil)

// Client talks to the monitor's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultStatsBind = "127.0.0.1:7488"
	defaultUserAgent = "quartercade/0.1"
	requestTimeout   = 2 * time.Second
	statsPath        = "/api/stats"
)

// NewClient builds a Client for a host:port or URL. An empty value uses the
// default local monitor address.
func NewClient(statsBind string) (*Client, error) {
	base, err := parseBaseURL(statsBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized monitor address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchSample retrieves the monitor's latest reading.
func (c *Client) FetchSample(ctx context.Context) (Sample, error) {
	if c == nil {
		return Sample{}, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: statsPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Sample{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Sample{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Sample{}, fmt.Errorf("api %s returned status %d", statsPath, resp.StatusCode)
	}
	var sample Sample
	if err := json.NewDecoder(resp.Body).Decode(&sample); err != nil {
		return Sample{}, fmt.Errorf("decode response: %w", err)
	}
	return sample, nil
}

func parseBaseURL(statsBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(statsBind)
	if trimmed == "" {
		trimmed = defaultStatsBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse stats_url %q: %w", statsBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
