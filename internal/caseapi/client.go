// Package caseapi is the HTTP client for the downstream case-management API.
package caseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/linnemanlabs/hivebridge/internal/alert"
)

const httpTimeout = 30 * time.Second

// Client submits canonical alerts to the case-management alert endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// New creates a case API client for the given endpoint and API key.
func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// CreateAlert posts one alert and returns the creation result exactly as the
// API produced it. There is no retry; failures surface to the caller.
func (c *Client) CreateAlert(ctx context.Context, al *alert.Alert) (json.RawMessage, error) {
	body, err := json.Marshal(al)
	if err != nil {
		return nil, fmt.Errorf("marshal alert: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.Path = path.Join(u.Path, "api/v1/alert")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req) //nolint:gosec // G704: endpoint is set at construction from config, not request input
	if err != nil {
		return nil, fmt.Errorf("create alert failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("case api returned %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
