package pathway

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the parallel solver's round loop: rounds processed,
// nodes expanded, and current open-set size. Passing a non-nil Registerer
// to NewMetrics exposes these for scraping; passing nil still produces a
// working, merely unregistered, set of collectors.
type Metrics struct {
	Rounds        prometheus.Counter
	NodesExpanded prometheus.Counter
	OpenSetSize   prometheus.Gauge
}

// NewMetrics builds a Metrics set and registers it with reg if reg is not
// nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathway_parallel_rounds_total",
			Help: "Number of batch rounds processed by the parallel solver.",
		}),
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathway_parallel_nodes_expanded_total",
			Help: "Number of nodes closed and expanded by the parallel solver.",
		}),
		OpenSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pathway_parallel_open_set_size",
			Help: "Size of the parallel solver's open set after the last merge.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Rounds, m.NodesExpanded, m.OpenSetSize)
	}
	return m
}
