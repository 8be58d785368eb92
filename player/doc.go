// Package player provides the root component of a PlayerKit tree.
//
// A Player is a regular component with three extra responsibilities: it
// builds the tree declared in a config.Config, it carries the dependency set
// (logger, metrics, registry) every descendant inherits, and it owns the user
// activity state the rest of the tree reports into.
//
// # Construction
//
//	reg := component.NewRegistry()
//	_ = player.RegisterBuiltins(reg)
//
//	cfg, err := config.LoadFile("player.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p, err := player.New(cfg, component.Dependencies{Registry: reg})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Dispose()
//
// # User Activity
//
// Descendants report input with ReportUserActivity (touch events are
// forwarded automatically unless reportTouchActivity is false). The player
// samples those reports every 250ms: the first report flips it useractive,
// and a configurable quiet period (inactivity_timeout, default 2s) flips it
// back with a userinactive event. Both timers are disposal-scoped, so
// Dispose cancels them with everything else.
package player
