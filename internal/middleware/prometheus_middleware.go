package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute подставляется вместо пути, если ни один маршрут не совпал:
// иначе произвольные URL раздувают число серий.
const unmatchedRoute = "unmatched"

// PrometheusMiddleware считает запросы к инспекционному API.
//
// Маршрут берётся из шаблона gin (/api/nodes/:id), а не из URL, поэтому
// запросы к разным узлам попадают в одну серию. Статус сворачивается
// в класс (2xx, 4xx, 5xx). Отдельно учитываются отказы из-за цикла мира:
// 503 (цикл остановлен) и 504 (цикл не ответил за таймаут).
type PrometheusMiddleware struct {
	requests  *prometheus.CounterVec   // {route,method,class}
	latency   *prometheus.HistogramVec // {route}
	loopFails *prometheus.CounterVec   // {route,reason}
	inflight  prometheus.Gauge
	gatherer  prometheus.Gatherer
}

// NewPrometheusMiddleware регистрирует метрики с префиксом service в reg.
// nil означает дефолтный регистр. Если reg умеет отдавать метрики
// (например *prometheus.Registry), /metrics читает из него же.
func NewPrometheusMiddleware(service string, reg prometheus.Registerer) *PrometheusMiddleware {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	pm := &PrometheusMiddleware{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "requests_total",
			Help:      "Запросы к API по маршруту, методу и классу статуса.",
		}, []string{"route", "method", "class"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: service,
			Name:      "request_seconds",
			Help:      "Время ответа API, включая ожидание тика цикла мира.",
			Buckets:   []float64{0.001, 0.005, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2},
		}, []string{"route"}),
		loopFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "loop_unavailable_total",
			Help:      "Запросы, на которые цикл мира не смог ответить.",
		}, []string{"route", "reason"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: service,
			Name:      "requests_inflight",
			Help:      "Запросы, ожидающие ответа.",
		}),
	}

	reg.MustRegister(pm.requests, pm.latency, pm.loopFails, pm.inflight)
	if g, ok := reg.(prometheus.Gatherer); ok {
		pm.gatherer = g
	} else {
		pm.gatherer = prometheus.DefaultGatherer
	}
	return pm
}

// Handler подключается через router.Use().
func (pm *PrometheusMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		pm.inflight.Inc()
		defer pm.inflight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()

		pm.requests.WithLabelValues(route, c.Request.Method, statusClass(status)).Inc()
		pm.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())

		switch status {
		case http.StatusServiceUnavailable:
			pm.loopFails.WithLabelValues(route, "stopped").Inc()
		case http.StatusGatewayTimeout:
			pm.loopFails.WithLabelValues(route, "timeout").Inc()
		}
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// RegisterMetricsEndpoint вешает GET /metrics на router.
func (pm *PrometheusMiddleware) RegisterMetricsEndpoint(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(pm.gatherer, promhttp.HandlerOpts{})))
}
