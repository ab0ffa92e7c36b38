package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics: Prometheus-метрики игрового цикла.
type Metrics struct {
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	jobs         prometheus.Counter
	commands     prometheus.Counter
	nodes        prometheus.Gauge
	pending      prometheus.Gauge
}

// NewMetrics создаёт метрики и регистрирует их в reg. При reg == nil
// используется глобальный регистр Prometheus.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "ticks_total",
			Help:      "Число выполненных тиков.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "world",
			Name:      "tick_duration_seconds",
			Help:      "Длительность прохода одного тика.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
		jobs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "jobs_run_total",
			Help:      "Число выполненных отложенных задач.",
		}),
		commands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "world",
			Name:      "commands_total",
			Help:      "Число внешних команд, выполненных на потоке цикла.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "world",
			Name:      "nodes",
			Help:      "Число живых узлов мира.",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "world",
			Name:      "jobs_pending",
			Help:      "Число задач в очереди ожидания.",
		}),
	}
	reg.MustRegister(m.ticks, m.tickDuration, m.jobs, m.commands, m.nodes, m.pending)
	return m
}
