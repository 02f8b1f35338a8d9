package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PublishRate compares completed publications with stage failures.
func PublishRate() *timeseries.PanelBuilder {
	return summary(lines("Publications", "Completed publications and stage failures per second",
		query{`etsy_bridge:publish_completed:rate5m`, "completed"},
		query{`etsy_bridge:publish_failures:rate5m`, "failed"},
	)).
		Span(thirdWidth)
}

// StageFailures breaks failures down by the stage that failed. Failures
// after "created" leave a draft listing behind on Etsy.
func StageFailures() *timeseries.PanelBuilder {
	return bars("Failures by Stage", "Publication failures per stage over the last hour",
		query{fmt.Sprintf("sum(increase(%s[1h])) by (stage)", series("publish_stage_failures_total")), "{{stage}}"},
	)
}

// MediaFetches shows remote image and video downloads by result.
func MediaFetches() *timeseries.PanelBuilder {
	return lines("Media Fetches", "Remote image and video downloads per second by result",
		query{fmt.Sprintf("sum(rate(%s[5m])) by (result)", series("media_fetches_total")), "{{result}}"},
	).
		Span(thirdWidth).
		Unit("reqps")
}
