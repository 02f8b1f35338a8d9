// Package middleware provides Echo middleware for the etsy-bridge server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/etsy-bridge/internal/metrics"
)

// unmatchedRoute labels requests that no route handled, so scanners probing
// random paths cannot grow the label set.
const unmatchedRoute = "unmatched"

// probePaths are scraped or polled constantly and only update gauges.
var probePaths = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if gauge, ok := probePaths[c.Request().URL.Path]; ok {
				err := next(c)
				if gauge != nil {
					setUp(gauge, responseStatus(c, err))
				}
				return err
			}

			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}
			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

// responseStatus is the status the client will see. Errors returned up the
// chain are not written yet, so their code comes from the error.
func responseStatus(c echo.Context, err error) int {
	if c.Response().Committed || err == nil {
		return c.Response().Status
	}
	if he, ok := err.(*echo.HTTPError); ok { //nolint:errorlint // echo returns it unwrapped
		return he.Code
	}
	return 500
}

func setUp(g prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		g.Set(1)
		return
	}
	g.Set(0)
}
