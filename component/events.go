package component

import (
	"sync"

	"github.com/google/uuid"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// Lifecycle and interaction events emitted by components.
const (
	// EventDispose fires first in teardown, non-bubbling, while the
	// component's element is still intact.
	EventDispose = "dispose"
	// EventReady fires once, after the ready queue drains.
	EventReady = "ready"
	// EventResize fires on dimension changes unless explicitly skipped.
	EventResize = "resize"
	// EventTap is synthesized from qualifying touch sequences.
	EventTap = "tap"

	EventTouchStart = "touchstart"
	EventTouchMove  = "touchmove"
	EventTouchEnd   = "touchend"

	// EventUserActivity is the internal reporting event dispatched on the
	// root component's element whenever a descendant observes user input.
	EventUserActivity = "useractivity"
)

// LeafDataKey marks an element whose owning component does not expect
// children. AddChild warns when adopting under a marked element.
const LeafDataKey = "pk-leaf"

// newNonBubbling builds a lifecycle-style event confined to its target.
func newNonBubbling(eventType string) *dom.Event {
	ev := dom.NewEvent(eventType)
	ev.Bubbles = false
	return ev
}

// Handler is a component-level event callback. The receiving component (the
// one that registered the handler, not necessarily the one the event fired
// on) is passed explicitly, replacing implicit receiver binding.
type Handler func(c *Component, ev *dom.Event)

// Target is anything a component can listen on: another component, or a raw
// element wrapped with ElementTarget.
type Target interface {
	El() *dom.Element
}

type elementTarget struct{ el *dom.Element }

func (t elementTarget) El() *dom.Element { return t.el }

// ElementTarget adapts a raw element so it can be passed to OnTarget.
func ElementTarget(el *dom.Element) Target { return elementTarget{el: el} }

// Subscription is the first-class handle for one event registration. It is
// jointly owned by both endpoints of a cross-component subscription: either
// side's disposal retires it, and Cancel retires it explicitly. A handle
// whose subscription has already been retired cancels as a no-op.
type Subscription struct {
	mu        sync.Mutex
	id        string
	owner     *Component
	targetEl  *dom.Element
	eventType string

	listenerID   string // forwarded handler, on targetEl
	ownCleanupID string // dispose hook on the owner's element (foreign subs only)
	mirrorID     string // dispose hook on targetEl (foreign subs only)

	cancelled bool
}

// EventType returns the event type this subscription listens for.
func (s *Subscription) EventType() string { return s.eventType }

// Active reports whether the subscription is still installed.
func (s *Subscription) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.cancelled
}

// Cancel removes the subscription and both of its auxiliary dispose hooks.
// Cancelling twice, or after either endpoint has disposed, is a no-op.
func (s *Subscription) Cancel() {
	if !s.retire() {
		return
	}

	if s.targetEl != nil {
		s.targetEl.RemoveEventListener(s.eventType, s.listenerID)
		if s.mirrorID != "" {
			s.targetEl.RemoveEventListener(EventDispose, s.mirrorID)
		}
	}
	if s.ownCleanupID != "" {
		if ownEl := s.owner.El(); ownEl != nil {
			ownEl.RemoveEventListener(EventDispose, s.ownCleanupID)
		}
	}
	s.owner.forgetSubscription(s.id)
}

// retire marks the subscription cancelled without touching listeners; the
// dispose hooks use it directly and remove exactly the listeners that still
// exist on their side. Reports whether this call performed the transition.
func (s *Subscription) retire() bool {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return false
	}
	s.cancelled = true
	s.mu.Unlock()

	if m := s.owner.deps.Metrics; m != nil {
		m.ListenersActive.Dec()
	}
	return true
}

// On binds fn to this component's own element for the given event type and
// returns the subscription handle. Binding on a disposed component is a
// lifecycle error and fails fast.
func (c *Component) On(eventType string, fn Handler) (*Subscription, error) {
	return c.bindLocal(eventType, fn, false)
}

// One is On plus self-removal after the first invocation. The handle remains
// valid for cancelling the subscription before it fires.
func (c *Component) One(eventType string, fn Handler) (*Subscription, error) {
	return c.bindLocal(eventType, fn, true)
}

func (c *Component) bindLocal(eventType string, fn Handler, once bool) (*Subscription, error) {
	if err := c.validateBind(eventType, fn, "On"); err != nil {
		return nil, err
	}
	el := c.El()
	if el == nil {
		return nil, errors.WrapFatal(errors.ErrNilElement, c.def.Name(), "On", "listener binding")
	}

	s := &Subscription{
		id:        uuid.NewString(),
		owner:     c,
		targetEl:  el,
		eventType: eventType,
	}
	s.listenerID = el.AddEventListener(eventType, c.wrapHandler(s, fn, once))

	c.mu.Lock()
	if c.localSubs != nil {
		c.localSubs[s.id] = s
	}
	c.mu.Unlock()

	if m := c.deps.Metrics; m != nil {
		m.ListenersActive.Inc()
	}
	return s, nil
}

// OnTarget binds fn to a foreign target (another component or a wrapped raw
// element) with the receiver explicitly captured, and installs the two
// auxiliary dispose hooks atomically with the subscription: one on this
// component's dispose event that unsubscribes from the target, and a mirror
// on the target's dispose event that removes the first hook so this
// component never tries to unsubscribe from an endpoint that is already
// gone.
func (c *Component) OnTarget(target Target, eventType string, fn Handler) (*Subscription, error) {
	return c.bindForeign(target, eventType, fn, false)
}

// OneTarget is OnTarget plus self-removal after the first invocation.
func (c *Component) OneTarget(target Target, eventType string, fn Handler) (*Subscription, error) {
	return c.bindForeign(target, eventType, fn, true)
}

func (c *Component) bindForeign(target Target, eventType string, fn Handler, once bool) (*Subscription, error) {
	if err := c.validateBind(eventType, fn, "OnTarget"); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.WrapInvalid(errors.ErrNilTarget, c.def.Name(), "OnTarget", "target validation")
	}
	targetEl := target.El()
	if targetEl == nil {
		return nil, errors.WrapFatal(errors.ErrNilTarget, c.def.Name(), "OnTarget", "target element resolution")
	}
	ownEl := c.El()
	if ownEl == nil {
		return nil, errors.WrapFatal(errors.ErrNilElement, c.def.Name(), "OnTarget", "listener binding")
	}

	s := &Subscription{
		id:        uuid.NewString(),
		owner:     c,
		targetEl:  targetEl,
		eventType: eventType,
	}
	s.listenerID = targetEl.AddEventListener(eventType, c.wrapHandler(s, fn, once))

	// Hook (a): when this component disposes, unsubscribe from the target.
	s.ownCleanupID = ownEl.AddEventListener(EventDispose, func(*dom.Event) {
		if !s.retire() {
			return
		}
		targetEl.RemoveEventListener(eventType, s.listenerID)
		targetEl.RemoveEventListener(EventDispose, s.mirrorID)
	})

	// Hook (b): when the target disposes first, forget hook (a) so this
	// component's own disposal does not reach into a torn-down element.
	s.mirrorID = targetEl.AddEventListener(EventDispose, func(*dom.Event) {
		if !s.retire() {
			return
		}
		if el := c.El(); el != nil {
			el.RemoveEventListener(EventDispose, s.ownCleanupID)
		}
		c.forgetSubscription(s.id)
	})

	c.mu.Lock()
	if c.foreignSubs != nil {
		c.foreignSubs[s.id] = s
	}
	c.mu.Unlock()

	if m := c.deps.Metrics; m != nil {
		m.ListenersActive.Inc()
	}
	return s, nil
}

func (c *Component) validateBind(eventType string, fn Handler, method string) error {
	if c.Disposed() {
		return errors.WrapFatal(errors.ErrDisposed, c.def.Name(), method, "listener binding")
	}
	if eventType == "" {
		return errors.WrapInvalid(errors.ErrEmptyEventType, c.def.Name(), method, "event type validation")
	}
	if fn == nil {
		return errors.WrapInvalid(errors.ErrNilHandler, c.def.Name(), method, "handler validation")
	}
	return nil
}

// wrapHandler captures the receiving component explicitly. Once-handlers
// cancel their subscription before invoking fn, so the handler-identity
// contract holds even when fn re-triggers the same event type.
func (c *Component) wrapHandler(s *Subscription, fn Handler, once bool) dom.Handler {
	return func(ev *dom.Event) {
		if once {
			if !s.Active() {
				return
			}
			s.Cancel()
		}
		fn(c, ev)
	}
}

// Off cancels a subscription previously returned by On/One/OnTarget/
// OneTarget. It undoes both the forwarded listener and, for foreign
// subscriptions, both auxiliary dispose hooks.
func (c *Component) Off(s *Subscription) {
	if s == nil {
		return
	}
	s.Cancel()
}

// OffAll removes every listener bound directly to this component's own
// element. Foreign-target subscriptions are never touched; they must be
// cancelled explicitly through their handles.
func (c *Component) OffAll() {
	c.mu.Lock()
	subs := make([]*Subscription, 0, len(c.localSubs))
	for _, s := range c.localSubs {
		subs = append(subs, s)
	}
	c.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}

func (c *Component) forgetSubscription(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Maps are nil after disposal; delete on nil maps is a no-op.
	delete(c.localSubs, id)
	delete(c.foreignSubs, id)
}

// Trigger synchronously dispatches an event of the given type on this
// component's element, with data merged into the event payload. Triggering
// on a disposed component fails fast rather than silently no-oping.
func (c *Component) Trigger(eventType string, data map[string]any) error {
	if eventType == "" {
		return errors.WrapInvalid(errors.ErrEmptyEventType, c.def.Name(), "Trigger", "event type validation")
	}
	ev := dom.NewEvent(eventType)
	ev.MergeData(data)
	return c.TriggerEvent(ev)
}

// TriggerEvent dispatches a pre-built event on this component's element.
func (c *Component) TriggerEvent(ev *dom.Event) error {
	if ev == nil || ev.Type == "" {
		return errors.WrapInvalid(errors.ErrEmptyEventType, c.def.Name(), "TriggerEvent", "event validation")
	}

	c.mu.Lock()
	disposed := c.disposed
	el := c.el
	c.mu.Unlock()

	if disposed {
		return errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "TriggerEvent", "event dispatch")
	}
	if el == nil {
		return errors.WrapFatal(errors.ErrNilElement, c.def.Name(), "TriggerEvent", "event dispatch")
	}

	if m := c.deps.Metrics; m != nil {
		m.EventsDispatched.WithLabelValues(ev.Type).Inc()
	}
	el.DispatchEvent(ev)
	return nil
}
