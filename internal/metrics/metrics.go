package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuartersAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sim_quarters_advanced_total",
			Help: "Total number of quarter transitions computed",
		},
	)

	DecisionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sim_decisions_resolved_total",
			Help: "Total number of decisions resolved, by application path",
		},
		[]string{"path"},
	)

	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sim_events_emitted_total",
			Help: "Total number of events emitted during quarter transitions",
		},
		[]string{"type"},
	)

	CompaniesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sim_companies_active",
			Help: "Number of companies registered in the simulation",
		},
	)
)
