// Package telemetry builds the logger and the Prometheus metrics of a
// trialign run.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for Metrics.Alignments.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid_input"
	OutcomeTooLarge    = "too_large"
	OutcomeUnverified  = "verify_failed"
	OutcomeInternalErr = "error"
)

// Metrics holds the collectors of one run on a private registry, so tests
// and repeated runs never collide with the default registry.
type Metrics struct {
	Registry *prometheus.Registry

	// Alignments counts finished alignments.
	// Labels: outcome (ok, invalid_input, too_large, verify_failed, error)
	Alignments *prometheus.CounterVec
	// FillSeconds observes the wall time of the DP fill.
	// Labels: mode (serial, wavefront)
	FillSeconds *prometheus.HistogramVec
	// Cells is the size of the last lattice.
	Cells prometheus.Gauge
	// Columns is the length of the last alignment.
	Columns prometheus.Gauge
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Alignments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trialign",
			Name:      "alignments_total",
			Help:      "Three-way alignments by outcome",
		}, []string{"outcome"}),
		FillSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trialign",
			Name:      "fill_duration_seconds",
			Help:      "Wall time of the lattice fill in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"mode"}),
		Cells: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "trialign",
			Name:      "lattice_cells",
			Help:      "Cells of the most recent lattice",
		}),
		Columns: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "trialign",
			Name:      "alignment_columns",
			Help:      "Columns of the most recent alignment",
		}),
	}
}

// ObserveFill records one fill of cells taking d.
func (m *Metrics) ObserveFill(workers, cells int, d time.Duration) {
	mode := "serial"
	if workers > 1 {
		mode = "wavefront"
	}
	m.FillSeconds.WithLabelValues(mode).Observe(d.Seconds())
	m.Cells.Set(float64(cells))
}

// Done counts one alignment with the given outcome.
func (m *Metrics) Done(outcome string) {
	m.Alignments.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes the registry in the text exposition format for the
// node_exporter textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
