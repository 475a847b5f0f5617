package cfg

import (
	"errors"
	"flag"
	"fmt"
)

// Config adds bridge-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds          int
	ShutdownBudgetSeconds int
	APIPort               int
	CaseAPIEndpoint       string
	CaseAPIKey            string
	LookupEndpoint        string
	LookupAPIKey          string
	WebhookToken          string
	SlackWebhookURL       string
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 60, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 90, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "API listen TCP port (1..65535)")
	fs.StringVar(&c.CaseAPIEndpoint, "case-api-endpoint", "", "base URL of the case management API receiving created alerts")
	fs.StringVar(&c.CaseAPIKey, "case-api-key", "", "API key for the case management API")
	fs.StringVar(&c.LookupEndpoint, "lookup-endpoint", "", "base URL of the technique pattern lookup service")
	fs.StringVar(&c.LookupAPIKey, "lookup-api-key", "", "API key for the pattern lookup service (empty = unauthenticated)")
	fs.StringVar(&c.WebhookToken, "webhook-token", "", "shared token webhook senders must present (empty = no auth)")
	fs.StringVar(&c.SlackWebhookURL, "slack-webhook-url", "", "Slack webhook URL for notifications")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	// Case API is the destination for every processed webhook
	if c.CaseAPIEndpoint == "" {
		errs = append(errs, errors.New("CASE_API_ENDPOINT is required"))
	}
	if c.CaseAPIKey == "" {
		errs = append(errs, errors.New("CASE_API_KEY is required"))
	}

	// Pattern lookup backs technique resolution on incident feeds
	if c.LookupEndpoint == "" {
		errs = append(errs, errors.New("LOOKUP_ENDPOINT is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
