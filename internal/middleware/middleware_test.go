package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *PrometheusMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRequestLogger(nil).Handler())
	pm := NewPrometheusMiddleware("test_api", prometheus.NewRegistry())
	r.Use(pm.Handler())
	pm.RegisterMetricsEndpoint(r)
	r.GET("/ok", func(c *gin.Context) {
		id, _ := c.Get(TraceIDKey)
		c.String(http.StatusOK, id.(string))
	})
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/nodes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/stopped", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	r.GET("/slow", func(c *gin.Context) { c.Status(http.StatusGatewayTimeout) })
	return r, pm
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRequestLoggerSetsTraceID(t *testing.T) {
	r, _ := newRouter(t)
	rec := serve(r, "/ok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Trace-Id"))

	other := serve(r, "/ok")
	assert.NotEqual(t, rec.Body.String(), other.Body.String())
}

func TestPrometheusGroupsByRoute(t *testing.T) {
	r, pm := newRouter(t)
	serve(r, "/ok")
	serve(r, "/fail")
	serve(r, "/fail")
	serve(r, "/nodes/1")
	serve(r, "/nodes/2")
	serve(r, "/no/such/path")

	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requests.WithLabelValues("/ok", "GET", "2xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.requests.WithLabelValues("/fail", "GET", "4xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.requests.WithLabelValues("/nodes/:id", "GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requests.WithLabelValues(unmatchedRoute, "GET", "4xx")))
	assert.Equal(t, 0.0, testutil.ToFloat64(pm.inflight))

	rec := serve(r, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_api_request_seconds")
}

func TestPrometheusCountsLoopFailures(t *testing.T) {
	r, pm := newRouter(t)
	serve(r, "/stopped")
	serve(r, "/slow")
	serve(r, "/slow")

	assert.Equal(t, 1.0, testutil.ToFloat64(pm.loopFails.WithLabelValues("/stopped", "stopped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.loopFails.WithLabelValues("/slow", "timeout")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.requests.WithLabelValues("/slow", "GET", "5xx")))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusNoContent))
	assert.Equal(t, "3xx", statusClass(http.StatusFound))
	assert.Equal(t, "4xx", statusClass(http.StatusNotFound))
	assert.Equal(t, "5xx", statusClass(http.StatusGatewayTimeout))
}
