package rules

import "fmt"

// rate5m records the summed five-minute rate of a bridge counter as
// etsy_bridge:<name>:rate5m. selector may be empty.
func rate5m(name, counter, selector string) Rule {
	series := "etsy_bridge_" + counter
	if selector != "" {
		series += "{" + selector + "}"
	}
	return Rule{
		Record: fmt.Sprintf("etsy_bridge:%s:rate5m", name),
		Expr:   fmt.Sprintf("sum(rate(%s[5m]))", series),
	}
}

// RecordingRules returns the rates the dashboard and the alerts read.
// Alerts refer to these names, so the group must load first.
func RecordingRules() PrometheusRule {
	return resource("etsy-bridge-recording-rules", "etsy-bridge-recording",
		rate5m("http_requests", "http_requests_total", ""),
		rate5m("http_errors", "http_requests_total", `status=~"5.."`),
		rate5m("etsy_api_calls", "etsy_api_calls_total", ""),
		rate5m("etsy_api_errors", "etsy_api_calls_total", `status!~"2.."`),
		rate5m("publish_completed", "publish_completed_total", ""),
		rate5m("publish_failures", "publish_stage_failures_total", ""),
	)
}
