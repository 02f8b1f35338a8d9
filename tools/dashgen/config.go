package main

import "errors"

// KnownMetrics is the set of metric names exported by etsy-bridge plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"etsy_bridge_http_request_duration_seconds": true,
	"etsy_bridge_http_requests_total":           true,

	// Health metrics.
	"etsy_bridge_healthz_up": true,
	"etsy_bridge_readyz_up":  true,

	// Etsy API metrics.
	"etsy_bridge_etsy_api_calls_total":        true,
	"etsy_bridge_etsy_api_duration_seconds":   true,
	"etsy_bridge_etsy_daily_usage":            true,
	"etsy_bridge_etsy_daily_limit_hits_total": true,

	// OAuth metrics.
	"etsy_bridge_token_requests_total":  true,
	"etsy_bridge_session_authenticated": true,

	// Publication metrics.
	"etsy_bridge_publish_stage_failures_total": true,
	"etsy_bridge_publish_completed_total":      true,
	"etsy_bridge_media_fetches_total":          true,
	"etsy_bridge_media_fetch_bytes":            true,

	// Scheduler metrics.
	"etsy_bridge_scheduler_next_refresh_timestamp_seconds": true,
	"etsy_bridge_scheduled_refreshes_total":                true,

	// Recording rules.
	"etsy_bridge:http_requests:rate5m":     true,
	"etsy_bridge:http_errors:rate5m":       true,
	"etsy_bridge:etsy_api_calls:rate5m":    true,
	"etsy_bridge:etsy_api_errors:rate5m":   true,
	"etsy_bridge:publish_completed:rate5m": true,
	"etsy_bridge:publish_failures:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
