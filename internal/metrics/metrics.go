// Package metrics defines Prometheus metrics for etsy-bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "etsy_bridge"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe found an Etsy session, 0 otherwise.",
	})
)

// Etsy API metrics.
var (
	EtsyAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "etsy_api_calls_total",
		Help:      "Total Etsy Open API calls by operation and response status.",
	}, []string{"operation", "status"})

	EtsyAPIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "etsy_api_duration_seconds",
		Help:      "Duration of Etsy Open API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	EtsyDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "etsy_daily_usage",
		Help:      "Etsy API calls used in the current 24-hour quota window.",
	})

	EtsyDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "etsy_daily_limit_hits_total",
		Help:      "Total number of calls refused because the daily quota was exhausted.",
	})
)

// OAuth metrics.
var (
	TokenRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_requests_total",
		Help:      "Total token endpoint requests by grant type and result.",
	}, []string{"grant_type", "result"})

	SessionAuthenticated = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "1 if an Etsy access token is held, 0 otherwise.",
	})
)

// Publication metrics.
var (
	PublishStageFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publish_stage_failures_total",
		Help:      "Total listing publication failures by stage.",
	}, []string{"stage"})

	PublishCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publish_completed_total",
		Help:      "Total listing publications that reached the complete state.",
	})
)

// Media fetch metrics.
var (
	MediaFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_fetches_total",
		Help:      "Total remote media fetches by result.",
	}, []string{"result"})

	MediaFetchBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "media_fetch_bytes",
		Help:      "Size of fetched media in bytes.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 8), // 16KiB .. 256MiB
	})
)

// Scheduler metrics.
var (
	SchedulerNextRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled session refresh check.",
	})

	ScheduledRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduled_refreshes_total",
		Help:      "Total scheduled session refresh attempts by result.",
	}, []string{"result"})
)
