// Package metrics holds the Prometheus collectors of the service. Collectors
// are registered once, on the default registry, at package init.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insurance_http_requests_total",
		Help: "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insurance_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"route", "method"})

	recordsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insurance_records_written_total",
		Help: "Successful creates and updates by entity and operation",
	}, []string{"entity", "op"})

	rejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insurance_rejections_total",
		Help: "Requests rejected before any write, by entity and reason",
	}, []string{"entity", "reason"})

	holderHistoryAppended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insurance_holder_history_appended_total",
		Help: "Holder snapshots appended to the history log",
	})
)

// ObserveHTTP records one finished request. Call with time.Now() taken before
// the handler chain ran.
func ObserveHTTP(route, method string, status int, start time.Time) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

func RecordWrite(entity, op string) {
	recordsWritten.WithLabelValues(entity, op).Inc()
}

func RecordRejection(entity, reason string) {
	rejections.WithLabelValues(entity, reason).Inc()
}

func RecordHolderHistory() {
	holderHistoryAppended.Inc()
}
