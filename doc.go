// Package playerkit provides the composition and lifecycle core of a media
// player UI toolkit: a tree of components with leak-proof event wiring,
// deferred-ready scheduling, disposal-scoped timers, and a name-based
// registry for building trees from declarative configuration.
//
// # Architecture
//
// The toolkit is layered; each layer depends only on the ones below it:
//
//	┌─────────────────────────────────────┐
//	│            cmd/playerkit            │  Demo binary: load config,
//	│                                     │  build tree, serve metrics
//	└─────────────────────────────────────┘
//	           ↓ builds
//	┌─────────────────────────────────────┐
//	│              player                 │  Root component, built-in
//	│   (activity tracking, built-ins)    │  definitions, user activity
//	└─────────────────────────────────────┘
//	           ↓ composes
//	┌─────────────────────────────────────┐
//	│             component               │  Definitions, registry,
//	│  (lifecycle, events, timers, tree)  │  ownership, disposal
//	└─────────────────────────────────────┘
//	           ↓ renders into
//	┌─────────────────────────────────────┐
//	│                dom                  │  Element tree, synchronous
//	│                                     │  event dispatch
//	└─────────────────────────────────────┘
//
// Supporting packages cut across the layers:
//
//   - config: YAML/JSON tree configuration with validation and typed getters
//   - metric: Prometheus instrumentation and the /metrics HTTP server
//   - errors: classified error handling (Invalid/Fatal) with sentinels
//
// # Component Model
//
// Every visible piece of the player is a Component constructed from a
// Definition: a value describing defaults, an element factory, and an init
// hook. Definitions extend each other to arbitrary depth, and the Registry
// maps names to definitions so trees can be described as data:
//
//	reg := component.NewRegistry()
//	player.RegisterBuiltins(reg)
//
//	p, err := player.New(cfg, component.Dependencies{Registry: reg})
//	if err != nil {
//	    return err
//	}
//	defer p.Dispose()
//
// Components own their element and their children. Disposal is strict and
// ordered: cleanup listeners fire first, then children dispose newest-first,
// then listeners, element attachment, and bookkeeping are released. Event
// subscriptions across components and timers scheduled on a component are
// all retired automatically when either side disposes.
//
// # Lifecycle
//
// A component is constructed, optionally accumulates ready callbacks, is
// marked ready exactly once, and is disposed exactly once:
//
//	c.Ready(func(c *component.Component) {
//	    // runs when TriggerReady fires, or immediately if already ready
//	})
//	c.TriggerReady()
//	c.Dispose()
//
// Operations on a disposed component fail fast with a classified
// errors.ErrDisposed error.
//
// # Configuration
//
// Trees are described in YAML or JSON and loaded through the config package:
//
//	player:
//	  width: 640
//	  height: 360
//	  inactivity_timeout: 2s
//	  children: [controlBar, bigPlayButton]
//	components:
//	  errorDisplay: false
//
// # Observability
//
// The metric package instruments component creation and disposal, event
// dispatch, timer scheduling, and registry lookups with Prometheus
// collectors, and serves them over HTTP. Instrumentation is optional; a nil
// metrics handle disables it.
package playerkit
