package player

import (
	"sync"
	"time"

	"github.com/c360/playerkit/component"
	"github.com/c360/playerkit/config"
	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// User activity events emitted on the player.
const (
	// EventUserActive fires when the player transitions from inactive to
	// active.
	EventUserActive = "useractive"
	// EventUserInactive fires when the inactivity timeout elapses with no
	// reported activity.
	EventUserInactive = "userinactive"
)

// activityCheckInterval is how often reported activity is folded into the
// useractive/userinactive state.
const activityCheckInterval = 250 * time.Millisecond

// defaultInactivityTimeout applies when configuration does not set one. A
// zero configured timeout disables the inactive transition entirely.
const defaultInactivityTimeout = 2 * time.Second

// playerDefinition is the root component type. The default element factory
// already derives the pk-player class from the name; init adds the focus
// attributes a top-level surface needs.
var playerDefinition = component.Define(component.Traits{
	Name: "Player",
	Defaults: component.Options{
		"reportTouchActivity": true,
	},
	Init: func(c *component.Component) error {
		if el := c.El(); el != nil {
			el.SetAttribute("role", "region")
			el.SetAttribute("tabindex", "-1")
		}
		return nil
	},
})

// Definition returns the Player component type, for hosts that extend it.
func Definition() *component.Definition {
	return playerDefinition
}

// Player is the root of a component tree. It owns the user activity state the
// rest of the tree reports into: descendants call ReportUserActivity (or have
// touch events forwarded automatically), and the player folds those reports
// into useractive/userinactive transitions on a fixed cadence.
type Player struct {
	*component.Component

	mu                sync.Mutex
	userActive        bool
	activitySeen      bool
	inactivityTimeout time.Duration
	inactivityTimer   component.TimerID
}

// New builds a player tree from configuration. The registry in deps resolves
// the configured children; RegisterBuiltins seeds it with the standard types.
// A nil config runs with defaults.
func New(cfg *config.Config, deps component.Dependencies) (*Player, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "Player", "New", "config validation")
	}

	opts := component.Options(cfg.Options())
	root, err := playerDefinition.NewRoot(opts, nil, deps)
	if err != nil {
		return nil, errors.Wrap(err, "Player", "New", "root construction")
	}

	p := &Player{
		Component:         root,
		inactivityTimeout: defaultInactivityTimeout,
	}
	if cfg.Player.InactivityTimeout.Std() > 0 {
		p.inactivityTimeout = cfg.Player.InactivityTimeout.Std()
	} else if raw, ok := opts["inactivityTimeout"].(time.Duration); ok {
		p.inactivityTimeout = raw
	}

	if cfg.Player.Width > 0 || cfg.Player.Height > 0 {
		if err := p.SetDimensionsQuiet(cfg.Player.Width, cfg.Player.Height); err != nil {
			_ = p.Dispose()
			return nil, errors.Wrap(err, "Player", "New", "initial dimensions")
		}
	}

	if err := p.listenForUserActivity(); err != nil {
		_ = p.Dispose()
		return nil, errors.Wrap(err, "Player", "New", "activity tracking")
	}

	return p, nil
}

// UserActive reports the current activity state.
func (p *Player) UserActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.userActive
}

// SetUserActive transitions the activity state, emitting useractive or
// userinactive on change. Setting the current state again is a no-op.
func (p *Player) SetUserActive(active bool) error {
	p.mu.Lock()
	if p.userActive == active {
		p.mu.Unlock()
		return nil
	}
	p.userActive = active
	p.mu.Unlock()

	eventType := EventUserInactive
	if active {
		eventType = EventUserActive
	}
	return p.Trigger(eventType, nil)
}

// listenForUserActivity wires the reporting pipeline: useractivity events set
// a flag, and a fixed-cadence interval folds the flag into state transitions.
// Both the interval and the inactivity timeout ride the disposal-scoped timer
// machinery, so tearing the player down cancels them.
func (p *Player) listenForUserActivity() error {
	if _, err := p.On(component.EventUserActivity, func(*component.Component, *dom.Event) {
		p.mu.Lock()
		p.activitySeen = true
		p.mu.Unlock()
	}); err != nil {
		return err
	}

	_, err := p.SetInterval(activityCheckInterval, func(*component.Component) {
		p.checkActivity()
	})
	return err
}

func (p *Player) checkActivity() {
	p.mu.Lock()
	seen := p.activitySeen
	p.activitySeen = false
	timeout := p.inactivityTimeout
	pending := p.inactivityTimer
	p.mu.Unlock()

	if !seen {
		return
	}

	_ = p.SetUserActive(true)

	// Restart the inactivity countdown. Clearing the previous timer keeps
	// exactly one countdown outstanding no matter how bursty the activity is.
	if pending != "" {
		p.ClearTimeout(pending)
	}
	if timeout <= 0 {
		return
	}
	tid, err := p.SetTimeout(timeout, func(*component.Component) {
		p.mu.Lock()
		quiet := !p.activitySeen
		p.inactivityTimer = ""
		p.mu.Unlock()
		if quiet {
			_ = p.SetUserActive(false)
		}
	})
	if err != nil {
		return
	}
	p.mu.Lock()
	p.inactivityTimer = tid
	p.mu.Unlock()
}
