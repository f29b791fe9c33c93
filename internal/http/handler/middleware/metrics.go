package middleware

import (
	"exercisetracker/internal/metrics"
	"fmt"
	"net/http"
	"time"
)

type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
}

func NewMetricsMiddleware(m *metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
	}
}

// Instrument must wrap the mux directly so the matched route pattern is visible.
func (m *MetricsMiddleware) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.metrics.InFlight.Inc()
		defer m.metrics.InFlight.Dec()

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		route := routeOf(r)
		statusClass := fmt.Sprintf("%dxx", rec.status/100)

		m.metrics.RequestsTotal.WithLabelValues(r.Method, route, statusClass).Inc()
		m.metrics.RequestDuration.WithLabelValues(r.Method, route, statusClass).Observe(time.Since(start).Seconds())
	})
}
