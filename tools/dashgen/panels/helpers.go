// Package panels builds the Grafana panels of the etsy-bridge dashboard.
// Every query reads metrics under the etsy_bridge namespace, scraped as
// job="etsy-bridge".
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EtsyDailyLimit is the default Etsy Open API daily call quota.
const EtsyDailyLimit = 10000

// Job is the Prometheus job label the bridge is scraped under.
const Job = `job="etsy-bridge"`

// Grid sizes on Grafana's 24-column layout. Rows hold four stats, two or
// three time series, or four narrow Etsy panels.
const (
	statWidth   = 6
	statHeight  = 4
	thirdWidth  = 8
	panelHeight = 8
)

// series returns the bridge metric name with the job selector and any
// extra matchers, e.g. series("etsy_daily_usage") or
// series("scheduled_refreshes_total", `result="error"`).
func series(name string, matchers ...string) string {
	sel := Job
	for _, m := range matchers {
		sel += "," + m
	}
	return fmt.Sprintf("etsy_bridge_%s{%s}", name, sel)
}

// quantile is histogram_quantile over a bridge histogram, grouped by le and
// the given labels.
func quantile(q float64, histogram, by string) string {
	group := "le"
	if by != "" {
		group += ", " + by
	}
	return fmt.Sprintf("histogram_quantile(%g, sum(rate(%s[5m])) by (%s))",
		q, series(histogram+"_bucket"), group)
}

func datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// query is one target; refs are assigned A, B, C in the order given.
type query struct {
	expr   string
	legend string
}

func targets(qs ...query) []*prometheus.DataqueryBuilder {
	out := make([]*prometheus.DataqueryBuilder, 0, len(qs))
	for i, q := range qs {
		out = append(out, prometheus.NewDataqueryBuilder().
			Expr(q.expr).
			LegendFormat(q.legend).
			RefId(string(rune('A'+i))))
	}
	return out
}

// lines is the bridge's standard rate panel with every series in the
// tooltip. Callers set the span.
func lines(title, description string, qs ...query) *timeseries.PanelBuilder {
	b := timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(panelHeight).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(common.NewVizTooltipOptionsBuilder().
			Mode(common.TooltipDisplayModeMulti).
			Sort(common.SortOrderDescending)).
		Thresholds(levels("green")).
		ColorScheme(dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)).
		DrawStyle(common.GraphDrawStyleLine)
	for _, t := range targets(qs...) {
		b.WithTarget(t)
	}
	return b
}

// bars is for hourly increases where each bucket is a count of events.
func bars(title, description string, qs ...query) *timeseries.PanelBuilder {
	return lines(title, description, qs...).
		Span(thirdWidth).
		FillOpacity(30).
		LineWidth(1).
		DrawStyle(common.GraphDrawStyleBars)
}

// summary adds a mean/max table legend to a rate panel.
func summary(b *timeseries.PanelBuilder) *timeseries.PanelBuilder {
	return b.Legend(common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs([]string{"mean", "max"}))
}

// step switches to color from the value at upward.
type step struct {
	at    float64
	color string
}

// levels builds absolute thresholds starting at base.
func levels(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	ts := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		ts = append(ts, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(ts)
}

// warnAt is green below warn, yellow from warn and red from crit.
func warnAt(warn, crit float64) cog.Builder[dashboard.ThresholdsConfig] {
	return levels("green", step{warn, "yellow"}, step{crit, "red"})
}

func byThreshold() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}
