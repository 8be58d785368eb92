// Package metric provides Prometheus-based metrics collection and an HTTP
// server for PlayerKit toolkit observability.
//
// The package offers a centralized metrics registry managing both core toolkit
// metrics (component lifecycle, event dispatch, timers, registry lookups) and
// custom host-specific metrics. It includes an HTTP server exposing metrics in
// Prometheus format for monitoring system integration.
//
// # Architecture
//
// The package follows a three-layer design:
//
//  1. Core Metrics: Toolkit-level metrics automatically registered (Metrics type)
//  2. Host Registry: Extensible registration for host-specific metrics (MetricsRegistrar interface)
//  3. HTTP Server: Metrics endpoint with health checks (Server type)
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil {
//	        log.Printf("metrics server error: %v", err)
//	    }
//	}()
//
// Components record into the core metrics automatically when a *Metrics is
// carried in their dependency set:
//
//	deps := component.Dependencies{Metrics: registry.CoreMetrics()}
//
// # Core Metrics
//
// The package automatically registers core toolkit metrics tracking:
//
//   - Component lifecycle: components_created_total, components_disposed_total, components_active
//   - Event dispatch: events_dispatched_total, events_listeners_active
//   - Timers: timers_scheduled_total, timers_cancelled_total
//   - Registry lookups: registry_lookups_total (by outcome: hit, miss, deprecated)
//
// # Host-Specific Metrics
//
// Hosts can register custom collectors through the registry:
//
//	buffering := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "player_buffering_total",
//	    Help: "Total number of buffering stalls",
//	})
//	err := registry.RegisterCollector("player", "buffering_total", buffering)
//
// Registration is keyed by owner and metric name, so two hosts cannot collide
// silently; duplicate registrations return a classified invalid error.
package metric
