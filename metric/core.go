package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all toolkit-level metrics (not host-specific)
type Metrics struct {
	// Component lifecycle metrics
	ComponentsCreated  *prometheus.CounterVec
	ComponentsDisposed *prometheus.CounterVec
	ComponentsActive   prometheus.Gauge

	// Event system metrics
	EventsDispatched *prometheus.CounterVec
	ListenersActive  prometheus.Gauge

	// Timer metrics
	TimersScheduled *prometheus.CounterVec
	TimersCancelled *prometheus.CounterVec

	// Registry metrics
	RegistryLookups *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all toolkit metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ComponentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "components",
				Name:      "created_total",
				Help:      "Total number of components constructed",
			},
			[]string{"type"},
		),

		ComponentsDisposed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "components",
				Name:      "disposed_total",
				Help:      "Total number of components disposed",
			},
			[]string{"type"},
		),

		ComponentsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "playerkit",
				Subsystem: "components",
				Name:      "active",
				Help:      "Number of live components",
			},
		),

		EventsDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "events",
				Name:      "dispatched_total",
				Help:      "Total number of events dispatched through components",
			},
			[]string{"event"},
		),

		ListenersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "playerkit",
				Subsystem: "events",
				Name:      "listeners_active",
				Help:      "Number of live event subscriptions",
			},
		),

		TimersScheduled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "timers",
				Name:      "scheduled_total",
				Help:      "Total number of timers scheduled",
			},
			[]string{"kind"},
		),

		TimersCancelled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "timers",
				Name:      "cancelled_total",
				Help:      "Total number of timers cancelled before firing",
			},
			[]string{"kind"},
		),

		RegistryLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "playerkit",
				Subsystem: "registry",
				Name:      "lookups_total",
				Help:      "Total number of component registry lookups",
			},
			[]string{"outcome"},
		),
	}
}

// RecordComponentCreated increments the creation counter for a component type
func (c *Metrics) RecordComponentCreated(componentType string) {
	c.ComponentsCreated.WithLabelValues(componentType).Inc()
	c.ComponentsActive.Inc()
}

// RecordComponentDisposed increments the disposal counter for a component type
func (c *Metrics) RecordComponentDisposed(componentType string) {
	c.ComponentsDisposed.WithLabelValues(componentType).Inc()
	c.ComponentsActive.Dec()
}

// RecordEventDispatched increments the dispatch counter for an event type
func (c *Metrics) RecordEventDispatched(eventType string) {
	c.EventsDispatched.WithLabelValues(eventType).Inc()
}

// RecordTimerScheduled increments the scheduling counter for a timer kind
func (c *Metrics) RecordTimerScheduled(kind string) {
	c.TimersScheduled.WithLabelValues(kind).Inc()
}

// RecordTimerCancelled increments the cancellation counter for a timer kind
func (c *Metrics) RecordTimerCancelled(kind string) {
	c.TimersCancelled.WithLabelValues(kind).Inc()
}

// RecordRegistryLookup increments the lookup counter for an outcome
// (hit, miss, deprecated)
func (c *Metrics) RecordRegistryLookup(outcome string) {
	c.RegistryLookups.WithLabelValues(outcome).Inc()
}
