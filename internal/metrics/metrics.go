// Package metrics holds the prometheus collectors describing a single
// episode generation run and exports them in the node-exporter textfile
// format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mklemm/jaxb2-episode-ext/internal/logging"
	"github.com/mklemm/jaxb2-episode-ext/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "metrics")

const (
	// Namespace is prepended to every metric name.
	Namespace = "xjc"

	// Subsystem scopes metrics to episode generation.
	Subsystem = "episode"

	// LabelKind is the generated type kind of a binding.
	LabelKind = "kind"

	// LabelReason is the reason a generated type was excluded.
	LabelReason = "reason"
)

// Metrics owns a private registry so that runs and tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	SchemaGroups prometheus.Gauge
	Bindings     *prometheus.CounterVec
	Skipped      *prometheus.CounterVec
	Resources    prometheus.Counter
}

// New creates and registers the run collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewPedanticRegistry(),

		SchemaGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "schema_groups",
			Help:      "Number of schema binding groups in the last episode",
		}),

		Bindings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "bindings_total",
			Help:      "Number of type bindings written to episode files",
		}, []string{LabelKind}),

		Skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "skipped_total",
			Help:      "Number of generated types left out of episode files",
		}, []string{LabelReason}),

		Resources: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: Subsystem,
			Name:      "resources_total",
			Help:      "Number of resource files registered with the code model",
		}),
	}
	m.registry.MustRegister(m.SchemaGroups, m.Bindings, m.Skipped, m.Resources)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records the outcome of one run. Keys of bindings are type kinds,
// keys of skipped are exclusion reasons.
func (m *Metrics) Observe(groups int, bindings, skipped map[string]int, resources int) {
	m.SchemaGroups.Set(float64(groups))
	for kind, n := range bindings {
		m.Bindings.WithLabelValues(kind).Add(float64(n))
	}
	for reason, n := range skipped {
		m.Skipped.WithLabelValues(reason).Add(float64(n))
	}
	m.Resources.Add(float64(resources))
}

// WriteTextfile writes all collected metrics to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return err
	}
	log.WithField(logfields.File, path).Debug("Wrote metrics textfile")
	return nil
}

// GetCounterValue returns the current value
// stored for the counter
func GetCounterValue(c prometheus.Counter) float64 {
	var pm dto.Metric
	if err := c.Write(&pm); err == nil {
		return pm.GetCounter().GetValue()
	}
	return 0
}

// GetGaugeValue returns the current value stored for the gauge
func GetGaugeValue(g prometheus.Gauge) float64 {
	var pm dto.Metric
	if err := g.Write(&pm); err == nil {
		return pm.GetGauge().GetValue()
	}
	return 0
}
