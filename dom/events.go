package dom

import (
	"maps"

	"github.com/google/uuid"
)

// Handler is an event callback. Handlers run synchronously on the dispatching
// goroutine, in registration order.
type Handler func(*Event)

// Event is a dispatched occurrence on an element. Target is the element the
// event was dispatched on; CurrentTarget is the element whose listeners are
// currently being invoked (they differ while an event bubbles).
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Bubbles       bool
	Data          map[string]any

	stopped          bool
	stopImmediate    bool
	defaultPrevented bool
}

// NewEvent creates a bubbling event of the given type. Callers needing a
// non-bubbling event clear Bubbles before dispatch.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, Bubbles: true}
}

// StopPropagation prevents the event from bubbling to ancestor elements.
// Remaining listeners on the current element still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// StopImmediatePropagation prevents any further listener from running,
// including those remaining on the current element.
func (ev *Event) StopImmediatePropagation() {
	ev.stopped = true
	ev.stopImmediate = true
}

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// MergeData folds the given payload into the event's Data map, allocating it
// if needed. Existing keys are overwritten.
func (ev *Event) MergeData(data map[string]any) {
	if len(data) == 0 {
		return
	}
	if ev.Data == nil {
		ev.Data = make(map[string]any, len(data))
	}
	maps.Copy(ev.Data, data)
}

type listener struct {
	id   string
	fn   Handler
	once bool
}

// AddEventListener registers fn for eventType and returns the listener id used
// to remove it. The same function may be registered any number of times; each
// registration gets its own id.
func (e *Element) AddEventListener(eventType string, fn Handler) string {
	return e.addListener(eventType, fn, false)
}

// AddEventListenerOnce registers fn for eventType so that it is removed
// automatically after its first invocation.
func (e *Element) AddEventListenerOnce(eventType string, fn Handler) string {
	return e.addListener(eventType, fn, true)
}

func (e *Element) addListener(eventType string, fn Handler, once bool) string {
	if fn == nil {
		return ""
	}
	l := &listener{id: uuid.NewString(), fn: fn, once: once}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[eventType] = append(e.listeners[eventType], l)
	return l.id
}

// RemoveEventListener removes the listener registered under id for eventType,
// reporting whether a listener was removed. Removing an id twice is harmless.
func (e *Element) RemoveEventListener(eventType, id string) bool {
	if id == "" {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	ls := e.listeners[eventType]
	for i, l := range ls {
		if l.id == id {
			e.listeners[eventType] = append(ls[:i:i], ls[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllListeners drops every listener on the element, for every type.
func (e *Element) RemoveAllListeners() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[string][]*listener)
}

// ListenerCount returns the number of listeners registered for eventType.
func (e *Element) ListenerCount(eventType string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[eventType])
}

// DispatchEvent delivers ev to this element's listeners and then, while
// ev.Bubbles holds and propagation has not been stopped, to each ancestor in
// turn. Dispatch is fully synchronous: DispatchEvent returns only after every
// listener has run.
func (e *Element) DispatchEvent(ev *Event) {
	if ev == nil || ev.Type == "" {
		return
	}
	if ev.Target == nil {
		ev.Target = e
	}

	node := e
	for node != nil {
		ev.CurrentTarget = node
		node.invokeListeners(ev)
		if !ev.Bubbles || ev.stopped {
			break
		}
		node = node.Parent()
	}
	ev.CurrentTarget = nil
}

func (e *Element) invokeListeners(ev *Event) {
	e.mu.RLock()
	ls := make([]*listener, len(e.listeners[ev.Type]))
	copy(ls, e.listeners[ev.Type])
	e.mu.RUnlock()

	for _, l := range ls {
		if l.once {
			// Remove before invoking so a handler that re-dispatches the same
			// event type cannot run the once-listener twice. If an earlier
			// handler in this dispatch already removed it, skip it entirely.
			if !e.RemoveEventListener(ev.Type, l.id) {
				continue
			}
		}
		l.fn(ev)
		if ev.stopImmediate {
			break
		}
	}
}
