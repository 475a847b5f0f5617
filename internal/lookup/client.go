// Package lookup is the HTTP client for the external pattern-query API.
package lookup

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

	"github.com/linnemanlabs/hivebridge/internal/attack"
)

const httpTimeout = 30 * time.Second

// Client implements attack.PatternLookup against the pattern-query endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// New creates a lookup client. An empty apiKey sends no Authorization header.
func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

type queryRequest struct {
	Query []queryOp `json:"query"`
}

type queryOp struct {
	Name     string `json:"_name"`
	IDOrName string `json:"idOrName"`
}

// GetPattern queries for patterns matching one technique id or name. The
// API answers with a JSON array of pattern records; an empty array or a
// non-array value means no match and yields an empty result, not an error.
func (c *Client) GetPattern(ctx context.Context, idOrName string) ([]attack.Pattern, error) {
	body, err := json.Marshal(queryRequest{
		Query: []queryOp{{Name: "getPattern", IDOrName: idOrName}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.Path = path.Join(u.Path, "api/v1/query")

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
		return nil, fmt.Errorf("pattern query failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20)) // 5 MB
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pattern query returned %d: %s", resp.StatusCode, string(respBody))
	}

	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// No-match responses are not guaranteed to be arrays.
		return nil, nil
	}

	var patterns []attack.Pattern
	if err := json.Unmarshal(trimmed, &patterns); err != nil {
		return nil, fmt.Errorf("decode patterns: %w", err)
	}
	return patterns, nil
}
