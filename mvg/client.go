package mvg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the messages endpoint. One GET per Fetch, no retries;
// callers decide what a failure means.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a client for the given messages URL with a hard
// request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        4,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// Fetch performs a single GET against the messages endpoint and returns
// the raw response body.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", c.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", c.url, err)
	}
	return body, nil
}
