package telemetry

import (
	"log/slog"
	"time"

	"roomgen/pkg/core"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the generation collectors on a private registry so that
// several instances can coexist (tests, sweeps).
type Metrics struct {
	Registry *prometheus.Registry

	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	openFraction *prometheus.GaugeVec
	iterations   *prometheus.GaugeVec
	capped       *prometheus.CounterVec
}

// NewMetrics registers the roomgen collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomgen_runs_total",
			Help: "Generator calls by generator and operation.",
		}, []string{"generator", "op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roomgen_run_duration_seconds",
			Help:    "Wall time spent in GenerateGrid/NextIteration.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"generator", "op"}),
		openFraction: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roomgen_open_fraction",
			Help: "Open cell fraction of the last returned grid.",
		}, []string{"generator"}),
		iterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roomgen_iterations",
			Help: "Iterations run by the last generation.",
		}, []string{"generator"}),
		capped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomgen_iteration_cap_hits_total",
			Help: "Runs that stopped at max_iterations before reaching their target.",
		}, []string{"generator"}),
	}
	m.Registry.MustRegister(m.runs, m.duration, m.openFraction, m.iterations, m.capped)
	return m
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Instrumented decorates a generator with logging and metrics.
type Instrumented struct {
	core.Generator

	log     *slog.Logger
	metrics *Metrics
	runID   string
}

// Instrument wraps gen. Either logger or metrics may be nil.
func Instrument(gen core.Generator, logger *slog.Logger, metrics *Metrics) *Instrumented {
	id := uuid.NewString()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Instrumented{
		Generator: gen,
		log:       logger.With("run_id", id, "generator", gen.Name()),
		metrics:   metrics,
		runID:     id,
	}
}

// RunID identifies this wrapper in log lines.
func (i *Instrumented) RunID() string { return i.runID }

// GenerateGrid forwards to the wrapped generator and records the run.
func (i *Instrumented) GenerateGrid() *core.Grid {
	return i.observe("generate", i.Generator.GenerateGrid)
}

// NextIteration forwards to the wrapped generator and records the step.
func (i *Instrumented) NextIteration() *core.Grid {
	return i.observe("next", i.Generator.NextIteration)
}

func (i *Instrumented) observe(op string, fn func() *core.Grid) *core.Grid {
	start := time.Now()
	grid := fn()
	elapsed := time.Since(start)

	attrs := []any{"op", op, "elapsed", elapsed, "open_fraction", grid.OpenFraction()}
	stats, hasStats := i.stats()
	if hasStats {
		attrs = append(attrs, "iterations", stats.Iterations)
		if stats.Agents > 0 {
			attrs = append(attrs, "agents", stats.Agents)
		}
	}
	if hasStats && !stats.TargetReached {
		i.log.Warn("iteration cap reached before target", attrs...)
	} else {
		i.log.Debug("grid produced", attrs...)
	}

	if i.metrics == nil {
		return grid
	}
	name := i.Name()
	i.metrics.runs.WithLabelValues(name, op).Inc()
	i.metrics.duration.WithLabelValues(name, op).Observe(elapsed.Seconds())
	i.metrics.openFraction.WithLabelValues(name).Set(grid.OpenFraction())
	if hasStats {
		i.metrics.iterations.WithLabelValues(name).Set(float64(stats.Iterations))
		if !stats.TargetReached && op == "generate" {
			i.metrics.capped.WithLabelValues(name).Inc()
		}
	}
	return grid
}

func (i *Instrumented) stats() (core.Stats, bool) {
	p, ok := i.Generator.(core.StatsProvider)
	if !ok {
		return core.Stats{}, false
	}
	return p.Stats(), true
}

// Stats forwards to the wrapped generator when it reports statistics.
func (i *Instrumented) Stats() core.Stats {
	s, _ := i.stats()
	return s
}

// Parameters forwards to the wrapped generator when it describes itself.
func (i *Instrumented) Parameters() core.ParameterSnapshot {
	if p, ok := i.Generator.(core.ParameterProvider); ok {
		return p.Parameters()
	}
	return core.ParameterSnapshot{}
}
