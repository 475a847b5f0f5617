// Package slack announces submitted alerts to Slack via incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linnemanlabs/hivebridge/internal/alert"
)

const (
	maxTitleLen = 150
	httpTimeout = 10 * time.Second
)

// Notifier sends alert submission notices to a Slack webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New creates a new Slack notifier. If webhookURL is empty, Send is a no-op.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: httpTimeout},
	}
}

// Send posts a submitted alert summary to the configured Slack webhook.
// If no webhook URL is configured, it returns nil immediately.
func (n *Notifier) Send(ctx context.Context, al *alert.Alert, runID string) error {
	if n.webhookURL == "" {
		return nil
	}

	msg := buildMessage(al, runID)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req) //nolint:gosec // G704: webhookURL is from trusted config, not user input
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func buildMessage(al *alert.Alert, runID string) map[string]any {
	return map[string]any{
		"blocks": []map[string]any{
			headerBlock(al),
			{"type": "divider"},
			fieldsBlock(al),
			{"type": "divider"},
			contextBlock(al, runID),
		},
	}
}

func headerBlock(al *alert.Alert) map[string]any {
	title := al.Title
	if title == "" {
		title = "(untitled)"
	}
	text := fmt.Sprintf("%s Alert Created: %s", severityEmoji(al.Severity), truncate(title, maxTitleLen))

	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": text,
		},
	}
}

func fieldsBlock(al *alert.Alert) map[string]any {
	fields := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Source:* %s", al.Source),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Reference:* %s", al.SourceRef),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Type:* %s", al.Type),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Severity:* %s", severityLabel(al.Severity)),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Observables:* %d", len(al.Observables)),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Techniques:* %d", len(al.Procedures)),
		},
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func contextBlock(al *alert.Alert, runID string) map[string]any {
	ts := time.UnixMilli(al.Date)

	elements := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("hivebridge • run %s • %s", runID, ts.UTC().Format("2006-01-02 15:04 UTC")),
		},
	}

	return map[string]any{
		"type":     "context",
		"elements": elements,
	}
}

func severityEmoji(severity int) string {
	switch severity {
	case 3:
		return "\U0001f534" // red circle
	case 2:
		return "\U0001f7e1" // yellow circle
	default:
		return "\U0001f7e2" // green circle
	}
}

func severityLabel(severity int) string {
	switch severity {
	case 3:
		return "high"
	case 2:
		return "medium"
	case 1:
		return "low"
	default:
		return "unspecified"
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
