package component

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// TimerID identifies a pending timer. It doubles as the synthetic key pairing
// the timer with its dispose-cleanup listener, so clearing a timer removes
// exactly the matching cleanup and nothing else.
type TimerID string

// TimerFunc is a timer callback with the owning component captured
// explicitly. Callbacks are delivered on timer goroutines.
type TimerFunc func(c *Component)

type componentTimer struct {
	stop      func()
	cleanupID string // dispose listener on the component's element
	interval  bool
}

// SetTimeout schedules fn to run once after d, and registers a cleanup
// listener on this component's dispose event so an in-flight timer never
// fires after disposal. Returns the timer id for ClearTimeout.
func (c *Component) SetTimeout(d time.Duration, fn TimerFunc) (TimerID, error) {
	el, err := c.timerAnchor(fn, "SetTimeout")
	if err != nil {
		return "", err
	}

	tid := TimerID("timeout_" + uuid.NewString())
	t := time.AfterFunc(d, func() {
		if !c.takeTimer(tid) {
			return
		}
		fn(c)
	})

	c.registerTimer(tid, el, func() { t.Stop() }, false)
	return tid, nil
}

// ClearTimeout cancels a pending timeout and removes its paired dispose
// cleanup listener. Unknown or already-fired ids are a no-op.
func (c *Component) ClearTimeout(id TimerID) {
	c.clearTimer(id)
}

// SetInterval schedules fn to run every d until cleared or the component is
// disposed, with the same dispose pairing as SetTimeout.
func (c *Component) SetInterval(d time.Duration, fn TimerFunc) (TimerID, error) {
	el, err := c.timerAnchor(fn, "SetInterval")
	if err != nil {
		return "", err
	}

	tid := TimerID("interval_" + uuid.NewString())
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if c.timerLive(tid) {
					fn(c)
				}
			}
		}
	}()

	c.registerTimer(tid, el, stop, true)
	return tid, nil
}

// ClearInterval cancels a repeating timer and removes its paired dispose
// cleanup listener. Unknown ids are a no-op.
func (c *Component) ClearInterval(id TimerID) {
	c.clearTimer(id)
}

// timerAnchor validates a timer registration. Timers are anchored to the
// component's element because their cancellation rides the dispose event; a
// component without an element cannot own disposal-scoped timers.
func (c *Component) timerAnchor(fn TimerFunc, method string) (*dom.Element, error) {
	if c.Disposed() {
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), method, "timer scheduling")
	}
	if fn == nil {
		return nil, errors.WrapInvalid(errors.ErrNilHandler, c.def.Name(), method, "callback validation")
	}
	el := c.El()
	if el == nil {
		return nil, errors.WrapFatal(errors.ErrNilElement, c.def.Name(), method, "timer scheduling")
	}
	return el, nil
}

func (c *Component) registerTimer(tid TimerID, el *dom.Element, stop func(), interval bool) {
	cleanupID := el.AddEventListener(EventDispose, func(*dom.Event) {
		stop()
	})

	c.mu.Lock()
	if c.timers != nil {
		c.timers[tid] = &componentTimer{stop: stop, cleanupID: cleanupID, interval: interval}
	}
	c.mu.Unlock()

	if m := c.deps.Metrics; m != nil {
		kind := "timeout"
		if interval {
			kind = "interval"
		}
		m.TimersScheduled.WithLabelValues(kind).Inc()
	}
}

// takeTimer consumes a one-shot timer entry at fire time, removing its
// cleanup listener. Returns false when the timer was cleared or the
// component disposed before the deadline, in which case the callback must
// not run.
func (c *Component) takeTimer(tid TimerID) bool {
	c.mu.Lock()
	if c.disposed || c.timers == nil {
		c.mu.Unlock()
		return false
	}
	t, ok := c.timers[tid]
	if !ok {
		c.mu.Unlock()
		return false
	}
	delete(c.timers, tid)
	el := c.el
	c.mu.Unlock()

	if el != nil {
		el.RemoveEventListener(EventDispose, t.cleanupID)
	}
	return true
}

// timerLive reports whether a repeating timer is still registered and its
// component alive; interval ticks that lose the race with Clear/Dispose are
// dropped.
func (c *Component) timerLive(tid TimerID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.timers == nil {
		return false
	}
	_, ok := c.timers[tid]
	return ok
}

func (c *Component) clearTimer(id TimerID) {
	c.mu.Lock()
	if c.timers == nil {
		c.mu.Unlock()
		return
	}
	t, ok := c.timers[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	delete(c.timers, id)
	el := c.el
	c.mu.Unlock()

	t.stop()
	if el != nil {
		el.RemoveEventListener(EventDispose, t.cleanupID)
	}

	if m := c.deps.Metrics; m != nil {
		kind := "timeout"
		if t.interval {
			kind = "interval"
		}
		m.TimersCancelled.WithLabelValues(kind).Inc()
	}
}

// ActiveTimers returns the number of pending timers; diagnostic helper.
func (c *Component) ActiveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
