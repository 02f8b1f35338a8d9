package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// upStat is red at 0 and green at 1.
func upStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(targets(query{series(metric), ""})[0]).
		Thresholds(levels("red", step{1, "green"})).
		ColorScheme(byThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows liveness.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Health check status (1 = ok, 0 = failing)", "healthz_up")
}

// ReadyzStat shows readiness, which requires an Etsy session.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness check status (1 = Etsy session held, 0 = not ready)", "readyz_up")
}

// SessionStat shows whether an Etsy access token is held.
func SessionStat() *stat.PanelBuilder {
	return upStat("Etsy Session", "1 when the bridge holds an Etsy access token", "session_authenticated")
}

// QuotaGauge shows daily Etsy usage as a percentage of the quota.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Etsy Quota %").
		Description("Daily Etsy API usage as percentage of the quota").
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(targets(query{fmt.Sprintf("%s / %d * 100", series("etsy_daily_usage"), EtsyDailyLimit), ""})[0]).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(warnAt(80, 95)).
		ColorScheme(byThreshold())
}
