// Package metrics records one observation per handled request.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DurationBuckets are in milliseconds.
var DurationBuckets = []float64{10, 50, 100, 200, 500, 1000, 2000}

// Recorder receives request observations. Implementations must not fail the request.
type Recorder interface {
	RecordRequest(operation string, statusCode int, duration time.Duration)
}

type NopRecorder struct{}

func (NopRecorder) RecordRequest(string, int, time.Duration) {}

// PrometheusRecorder exports a request counter and a latency histogram on a private registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusRecorder(namespace string) *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of handled requests.",
	}, []string{"method", "path", "status_code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "Request duration in milliseconds.",
		Buckets:   DurationBuckets,
	}, []string{"method", "path", "status_code"})

	registry.MustRegister(requests, duration)

	return &PrometheusRecorder{registry: registry, requests: requests, duration: duration}
}

// RecordRequest splits operation ("GET /attributes") into method and path labels.
func (r *PrometheusRecorder) RecordRequest(operation string, statusCode int, duration time.Duration) {
	defer func() { _ = recover() }()

	method, path := splitOperation(operation)
	code := strconv.Itoa(statusCode)
	r.requests.WithLabelValues(method, path, code).Inc()
	r.duration.WithLabelValues(method, path, code).Observe(float64(duration) / float64(time.Millisecond))
}

func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func splitOperation(operation string) (string, string) {
	method, path, ok := strings.Cut(operation, " ")
	if !ok {
		return "", operation
	}
	return method, path
}
