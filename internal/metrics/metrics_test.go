package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	r := NewPrometheusRecorder("catalog")

	r.RecordRequest("GET /attributes", 200, 12*time.Millisecond)
	r.RecordRequest("GET /attributes", 200, 3*time.Millisecond)
	r.RecordRequest("GET /attributes", 404, time.Millisecond)
	r.RecordRequest("GET /categories/tree", 500, 700*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/attributes", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/attributes", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("GET", "/categories/tree", "500")))
	assert.Equal(t, 3, testutil.CollectAndCount(r.duration, "catalog_http_request_duration_ms"))
}

func TestHistogramBuckets(t *testing.T) {
	r := NewPrometheusRecorder("catalog")
	r.RecordRequest("GET /categories/tree", 200, 150*time.Millisecond)

	expected := `
# HELP catalog_http_request_duration_ms Request duration in milliseconds.
# TYPE catalog_http_request_duration_ms histogram
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="10"} 0
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="50"} 0
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="100"} 0
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="200"} 1
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="500"} 1
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="1000"} 1
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="2000"} 1
catalog_http_request_duration_ms_bucket{method="GET",path="/categories/tree",status_code="200",le="+Inf"} 1
catalog_http_request_duration_ms_sum{method="GET",path="/categories/tree",status_code="200"} 150
catalog_http_request_duration_ms_count{method="GET",path="/categories/tree",status_code="200"} 1
`
	require.NoError(t, testutil.CollectAndCompare(r.duration, strings.NewReader(expected)))
}

func TestHandlerExposesRegistry(t *testing.T) {
	r := NewPrometheusRecorder("catalog")
	r.RecordRequest("GET /attributes", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `catalog_http_requests_total{method="GET",path="/attributes",status_code="200"} 1`)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NotPanics(t, func() { r.RecordRequest("GET /attributes", 200, time.Second) })
}
