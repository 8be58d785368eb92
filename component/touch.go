package component

import (
	"math"
	"sync"
	"time"

	"github.com/c360/playerkit/config"
	"github.com/c360/playerkit/dom"
)

// Tap qualification thresholds: a touch sequence is a tap when the finger
// moved less than tapMovementThreshold pixels and lifted within
// touchTimeThreshold of landing.
const (
	tapMovementThreshold = 10.0
	touchTimeThreshold   = 200 * time.Millisecond
)

// ReportUserActivity notifies the tree root that user input was observed on
// this component, by dispatching a non-bubbling useractivity event on the
// root's element. The root (typically the player) aggregates these into
// useractive/userinactive state. Reporting on a torn-down tree is dropped.
func (c *Component) ReportUserActivity() {
	root := c.Player()
	if root == nil {
		return
	}
	ev := newNonBubbling(EventUserActivity)
	ev.MergeData(map[string]any{"source": c.ID()})
	_ = root.TriggerEvent(ev)
}

// enableTouchActivityReporting forwards touch events on this component's
// element to the root as user activity. Enabled during construction unless
// the reportTouchActivity option is false. Components without an element
// (createEl=false) skip reporting until a host wires it manually.
func (c *Component) enableTouchActivityReporting() {
	if c.El() == nil {
		return
	}
	report := func(comp *Component, _ *dom.Event) {
		comp.ReportUserActivity()
	}
	for _, eventType := range []string{EventTouchStart, EventTouchMove, EventTouchEnd} {
		_, _ = c.On(eventType, report)
	}
}

// EmitTapEvents synthesizes tap events from qualifying touch sequences on
// this component's element: a touchstart followed by a touchend within the
// time threshold, with total movement under the movement threshold. Enabled
// during construction when the emitTapEvents option is true; interactive
// component types call it from their init hooks.
func (c *Component) EmitTapEvents() {
	if c.El() == nil {
		return
	}

	var (
		mu         sync.Mutex
		startTime  time.Time
		startX     float64
		startY     float64
		couldBeTap bool
	)

	_, _ = c.On(EventTouchStart, func(_ *Component, ev *dom.Event) {
		mu.Lock()
		defer mu.Unlock()
		startTime = time.Now()
		startX, startY = eventCoords(ev)
		couldBeTap = true
	})

	_, _ = c.On(EventTouchMove, func(_ *Component, ev *dom.Event) {
		mu.Lock()
		defer mu.Unlock()
		if !couldBeTap {
			return
		}
		x, y := eventCoords(ev)
		if math.Hypot(x-startX, y-startY) > tapMovementThreshold {
			couldBeTap = false
		}
	})

	_, _ = c.On(EventTouchEnd, func(comp *Component, _ *dom.Event) {
		mu.Lock()
		qualified := couldBeTap && time.Since(startTime) < touchTimeThreshold
		couldBeTap = false
		mu.Unlock()
		if qualified {
			_ = comp.Trigger(EventTap, nil)
		}
	})
}

// eventCoords extracts pointer coordinates from a touch event payload.
// Hosts populate pageX/pageY; absent coordinates read as the origin.
func eventCoords(ev *dom.Event) (x, y float64) {
	return config.GetFloat64(ev.Data, "pageX", 0), config.GetFloat64(ev.Data, "pageY", 0)
}
