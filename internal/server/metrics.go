package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplight_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shoplight_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shoplight_webhook_events_total",
		Help: "Settled webhook events by topic and result.",
	}, []string{"topic", "result"})
)

// HTTPMetrics exposes request-level and webhook-level instruments.
type HTTPMetrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	webhookEvents *prometheus.CounterVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requests:      httpRequests,
		duration:      httpDuration,
		webhookEvents: webhookEvents,
	}
}

func (m *HTTPMetrics) observeRequest(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveWebhook counts one settled webhook event.
func (m *HTTPMetrics) ObserveWebhook(topic string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.webhookEvents.WithLabelValues(topic, result).Inc()
}

// MetricsMiddleware records per-request counters and latency.
func MetricsMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		m.observeRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
