package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows bridge HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return summary(lines("Request Rate", "Bridge HTTP requests per second across all routes",
		query{`etsy_bridge:http_requests:rate5m`, "req/s"},
	)).
		Span(thirdWidth).
		Unit("reqps")
}

// LatencyPercentiles shows p50, p95 and p99 request duration. Publication
// requests include every Etsy round trip, so their tail dominates.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const h = "http_request_duration_seconds"
	return summary(lines("Latency Percentiles", "Bridge request duration, including time spent waiting on Etsy",
		query{quantile(0.50, h, ""), "p50"},
		query{quantile(0.95, h, ""), "p95"},
		query{quantile(0.99, h, ""), "p99"},
	)).
		Span(thirdWidth).
		Unit("s")
}

// ErrorRate shows 5xx responses as a share of all requests. Etsy validation
// errors are passed through with Etsy's 4xx status and do not count here.
func ErrorRate() *timeseries.PanelBuilder {
	return lines("Error Rate %", "5xx responses as a percentage of all bridge requests",
		query{`etsy_bridge:http_errors:rate5m / etsy_bridge:http_requests:rate5m * 100`, "error %"},
	).
		Span(thirdWidth).
		Unit("percent").
		Thresholds(warnAt(1, 5)).
		ColorScheme(byThreshold())
}
