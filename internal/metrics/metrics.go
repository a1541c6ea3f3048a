package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academia_http_requests_total",
		Help: "HTTP requests processed, by method, route and status.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "academia_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	cascadeDeletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academia_cascade_deletions_total",
		Help: "Cascade deletions attempted, by parent entity and outcome.",
	}, []string{"entity", "outcome"})
)

// GinMiddleware records request counts and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveCascade records the outcome of a cascade deletion.
func ObserveCascade(entity string, deleted bool, err error) {
	outcome := "deleted"
	switch {
	case err != nil:
		outcome = "error"
	case !deleted:
		outcome = "missing"
	}
	cascadeDeletions.WithLabelValues(entity, outcome).Inc()
}
