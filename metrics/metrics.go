// Package metrics tracks per-run synthesis counters: how many states and
// transitions each pipeline stage produced, and how many stall edges a run
// required. A Collector is read by an engine.StageObserver and never by the
// engine package itself, keeping observability out of the synthesis
// algorithms (§5.2).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds one synthesis run's metrics.
type Collector struct {
	Registry prometheus.Registerer

	StableStates    Gauge
	TransientStates Gauge
	Transitions     Gauge
	StallEdges      Counter
	PhaseDuration   *prometheus.HistogramVec
}

// NewCollector builds a Collector. PhaseDuration is registered against reg,
// labeled by pipeline stage name, matching engine.StageObserver's stage
// argument.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	phaseDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cohgen_phase_duration_ms",
		Help:    "wall-clock milliseconds spent in each pipeline stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"phase"})

	if err := reg.Register(phaseDuration); err != nil {
		return nil, err
	}

	return &Collector{
		Registry:        reg,
		StableStates:    NewGauge(),
		TransientStates: NewGauge(),
		Transitions:     NewGauge(),
		StallEdges:      NewCounter(),
		PhaseDuration:   phaseDuration,
	}, nil
}

// Observe updates the run's gauges from the protocol's current size. It is
// shaped to be called directly from an engine.StageObserver.
func (c *Collector) Observe(stableCount, transientCount, transitionCount int) {
	c.StableStates.Set(float64(stableCount))
	c.TransientStates.Set(float64(transientCount))
	c.Transitions.Set(float64(transitionCount))
}

// RecordStall increments the stall-edge counter. Called once per stall
// transition the stall-completion stage synthesizes (§4.9).
func (c *Collector) RecordStall() {
	c.StallEdges.Inc()
}

// RecordStageDuration observes how long a pipeline stage took, in
// milliseconds, labeled by stage name.
func (c *Collector) RecordStageDuration(phase string, ms float64) {
	c.PhaseDuration.WithLabelValues(phase).Observe(ms)
}
