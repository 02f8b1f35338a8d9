package rules

import "fmt"

// quotaWarnCalls is 80% of the default Etsy daily quota.
const quotaWarnCalls = 8000

type severity string

const (
	critical severity = "critical"
	warning  severity = "warning"
)

func alert(name string, sev severity, pending, expr, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    pending,
		Labels: map[string]string{"severity": string(sev)},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns the bridge's alerts. Session alerts point the operator
// at /auth, since only a browser consent can restore a lost refresh token.
func AlertRules() PrometheusRule {
	return resource("etsy-bridge-alerts", "etsy-bridge-alerts",
		alert("EtsyBridgeDown", critical, "2m",
			`absent(up{job="etsy-bridge"})`,
			"Etsy bridge is down",
			"The etsy-bridge job has been absent for more than 2 minutes."),
		alert("EtsyBridgeUnauthenticated", warning, "15m",
			`etsy_bridge_session_authenticated == 0`,
			"Etsy bridge has no Etsy session",
			"No access token has been held for 15 minutes. Visit /auth on the bridge to reconnect."),
		alert("EtsyBridgeRefreshFailing", warning, "5m",
			`increase(etsy_bridge_scheduled_refreshes_total{result="error"}[30m]) > 0`,
			"Scheduled Etsy token refresh is failing",
			"The refresh token was rejected or the token endpoint was unreachable. The session expires unless a refresh succeeds."),
		alert("EtsyBridgeHighErrorRate", warning, "5m",
			`etsy_bridge:http_errors:rate5m / etsy_bridge:http_requests:rate5m > 0.05`,
			"High HTTP error rate on the Etsy bridge",
			"More than 5% of bridge requests are returning 5xx errors over the last 5 minutes."),
		alert("EtsyBridgePublishFailures", warning, "15m",
			`etsy_bridge:publish_failures:rate5m > etsy_bridge:publish_completed:rate5m`,
			"More publications are failing than completing",
			"Listing publication failures have outpaced completions for 15 minutes."),
		alert("EtsyBridgeQuotaHigh", warning, "5m",
			fmt.Sprintf(`etsy_bridge_etsy_daily_usage > %d`, quotaWarnCalls),
			"Etsy API daily usage is above 80% of the quota",
			fmt.Sprintf("Daily Etsy API usage has exceeded %d calls.", quotaWarnCalls)),
		alert("EtsyBridgeLimitReached", critical, "0m",
			`increase(etsy_bridge_etsy_daily_limit_hits_total[5m]) > 0`,
			"Etsy API daily quota has been exhausted",
			"Calls are refused with 429 until the quota window resets."),
	)
}
