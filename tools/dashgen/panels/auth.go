package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenRequests shows code exchanges and refreshes against Etsy's token
// endpoint by outcome.
func TokenRequests() *timeseries.PanelBuilder {
	return bars("Token Requests", "Authorization code exchanges and refreshes over the last hour",
		query{
			fmt.Sprintf("sum(increase(%s[1h])) by (grant_type, result)", series("token_requests_total")),
			"{{grant_type}} {{result}}",
		},
	)
}

func sessionStat(title, description, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(panelHeight).
		Span(thirdWidth).
		WithTarget(targets(query{expr, ""})[0]).
		ColorScheme(byThreshold())
}

// NextRefresh shows the time until the scheduler next checks the session.
func NextRefresh() *stat.PanelBuilder {
	return sessionStat("Next Refresh Check", "Time until the scheduler next checks the session expiry",
		series("scheduler_next_refresh_timestamp_seconds")+" - time()").
		Unit("s").
		Thresholds(levels("green")).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshFailures counts failed scheduled refreshes over a day. A session
// whose refresh keeps failing will lapse at its expiry.
func RefreshFailures() *stat.PanelBuilder {
	return sessionStat("Refresh Failures (24h)", "Scheduled session refreshes that failed in the last 24 hours",
		fmt.Sprintf("increase(%s[24h])", series("scheduled_refreshes_total", `result="error"`))).
		Thresholds(warnAt(1, 3)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
