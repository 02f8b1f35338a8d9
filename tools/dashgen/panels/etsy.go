package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows Etsy Open API calls per second next to the calls that
// did not return 2xx.
func APICallsRate() *timeseries.PanelBuilder {
	return summary(lines("Etsy API Calls", "Etsy Open API calls per second",
		query{`etsy_bridge:etsy_api_calls:rate5m`, "calls/s"},
		query{`etsy_bridge:etsy_api_errors:rate5m`, "errors/s"},
	)).
		Span(statWidth).
		Unit("reqps")
}

// APILatency shows p95 Etsy latency per gateway operation. Uploads are
// expected to sit well above the JSON calls.
func APILatency() *timeseries.PanelBuilder {
	return lines("Etsy API Latency (p95)", "95th percentile Etsy call duration by operation",
		query{quantile(0.95, "etsy_api_duration_seconds", "operation"), "{{operation}}"},
	).
		Span(statWidth).
		Unit("s").
		Thresholds(warnAt(2, 10))
}

// DailyUsage plots the calls spent in the current quota window.
func DailyUsage() *timeseries.PanelBuilder {
	return lines("Daily Usage vs Quota",
		fmt.Sprintf("Etsy API calls in the current quota window (quota: %d)", EtsyDailyLimit),
		query{series("etsy_daily_usage"), "usage"},
	).
		Span(statWidth).
		Thresholds(warnAt(EtsyDailyLimit*0.8, EtsyDailyLimit)).
		ColorScheme(byThreshold())
}

// LimitHits counts calls the bridge refused itself because the daily quota
// was spent. Any value means publications are failing with 429.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Quota Refusals (24h)").
		Description("Calls refused locally because the daily Etsy quota was spent").
		Datasource(datasource()).
		Height(panelHeight).
		Span(statWidth).
		WithTarget(targets(query{fmt.Sprintf("increase(%s[24h])", series("etsy_daily_limit_hits_total")), ""})[0]).
		Thresholds(warnAt(1, 10)).
		ColorScheme(byThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
