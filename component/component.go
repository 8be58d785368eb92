package component

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/c360/playerkit/dom"
	"github.com/c360/playerkit/errors"
)

// guidCounter feeds generated component ids. Process-wide and monotonic so
// generated ids never collide, even across independent trees.
var guidCounter atomic.Uint64

func nextGUID() uint64 {
	return guidCounter.Add(1)
}

// Component is a node in the ownership tree. It owns exactly one element
// (never shared, nulled on disposal), an ordered child list with id and name
// indices, a private deep-copied options tree, and a ready-callback queue.
//
// Components are created through a Definition and destroyed exactly once via
// Dispose. All exported methods are safe for concurrent use, but the toolkit
// is designed for event-loop style hosts: dispatch is synchronous and
// listeners run in registration order.
type Component struct {
	mu   sync.Mutex
	def  *Definition
	deps Dependencies

	id     string
	name   string
	player *Component // tree root; the root points to itself

	el        *dom.Element
	contentEl *dom.Element

	opts Options

	children    []*Component
	childByID   map[string]*Component
	childByName map[string]*Component

	readyQueue []ReadyFunc
	isReady    bool
	disposed   bool

	localSubs   map[string]*Subscription
	foreignSubs map[string]*Subscription
	timers      map[TimerID]*componentTimer

	logger *Logger
}

// New constructs a component of this definition. The owner is the tree root
// the component reports to (the player); pass the root component itself, or
// nil to make the new component its own root. New does not attach the
// component to a parent; AddChild does that.
//
// Construction deep-copies and merges the definition chain's default options
// with opts, resolves or generates an id, acquires or creates the backing
// element, runs the chain's init hooks, constructs declared children, queues
// the ready callback, and enables touch-activity reporting unless opts
// suppress it. When New returns, the component is fully wired for events and
// tree membership; ready may not have fired yet.
func (d *Definition) New(owner *Component, opts Options, ready ReadyFunc) (*Component, error) {
	var deps Dependencies
	if owner != nil {
		deps = owner.deps
	}
	return d.construct(owner, opts, ready, deps)
}

// NewRoot constructs a root component carrying the given dependencies, which
// every descendant created under it inherits.
func (d *Definition) NewRoot(opts Options, ready ReadyFunc, deps Dependencies) (*Component, error) {
	return d.construct(nil, opts, ready, deps)
}

func (d *Definition) construct(owner *Component, opts Options, ready ReadyFunc, deps Dependencies) (*Component, error) {
	if d == nil {
		return nil, errors.WrapInvalid(errors.ErrNilDefinition, "Component", "New", "definition validation")
	}
	if owner != nil && owner.Disposed() {
		return nil, errors.WrapFatal(errors.ErrDisposed, "Component", "New", "owner validation")
	}

	c := &Component{
		def:         d,
		deps:        deps,
		opts:        Merge(d.defaultOptions(), opts),
		childByID:   make(map[string]*Component),
		childByName: make(map[string]*Component),
		localSubs:   make(map[string]*Subscription),
		foreignSubs: make(map[string]*Subscription),
		timers:      make(map[TimerID]*componentTimer),
	}
	if owner != nil {
		c.player = owner.Player()
	} else {
		c.player = c
	}

	c.name = c.opts.GetString("name", "")

	// Acquire or create the backing element. A supplied element is adopted
	// verbatim; createEl=false suppresses creation entirely.
	var adopted *dom.Element
	if el, ok := c.opts["el"].(*dom.Element); ok && el != nil {
		adopted = el
	}
	c.id = c.resolveID(adopted)
	c.logger = NewLogger(d.Name(), c.id, deps.GetLogger())

	switch {
	case adopted != nil:
		c.el = adopted
		if adopted.Tag() != "div" {
			warningLogger().Warn("component adopted a non-default element tag",
				"component", d.Name(), "tag", adopted.Tag())
		}
	case c.opts.GetBool("createEl", true):
		c.el = d.elementFactory()(c)
	}
	if c.el != nil && c.el.ID() == "" {
		c.el.SetID(c.id)
	}

	c.contentEl = c.el
	if cf := d.contentFactory(); cf != nil && c.el != nil {
		c.contentEl = cf(c)
		if c.contentEl != nil && c.contentEl != c.el {
			c.el.AppendChild(c.contentEl)
		}
	}

	if err := d.runInit(c); err != nil {
		c.abortConstruct()
		return nil, errors.Wrap(err, d.Name(), "New", "init hook")
	}

	if c.opts.GetBool("initChildren", true) {
		if err := c.initChildren(); err != nil {
			c.abortConstruct()
			return nil, err
		}
	}

	if ready != nil {
		if err := c.Ready(ready); err != nil {
			c.abortConstruct()
			return nil, err
		}
	}

	if c.opts.GetBool("reportTouchActivity", true) {
		c.enableTouchActivityReporting()
	}
	if c.opts.GetBool("emitTapEvents", false) {
		c.EmitTapEvents()
	}

	if m := deps.Metrics; m != nil {
		m.ComponentsCreated.WithLabelValues(d.Name()).Inc()
		m.ComponentsActive.Inc()
	}

	return c, nil
}

// resolveID picks the component id: caller-supplied, then the adopted
// element's id, then a generated id derived from the root's id and the
// process-wide counter.
func (c *Component) resolveID(adopted *dom.Element) string {
	if id := c.opts.GetString("id", ""); id != "" {
		return id
	}
	if adopted != nil && adopted.ID() != "" {
		return adopted.ID()
	}
	typeName := strings.ToLower(c.def.Name())
	if c.player == c {
		return fmt.Sprintf("%s_%d", typeName, nextGUID())
	}
	return fmt.Sprintf("%s_%s_%d", c.player.ID(), typeName, nextGUID())
}

// ID returns the component's unique id.
func (c *Component) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Name returns the component's name, or "" when unnamed.
func (c *Component) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Definition returns the component's type definition.
func (c *Component) Definition() *Definition {
	return c.def
}

// Player returns the tree root this component reports to. A root component
// returns itself.
func (c *Component) Player() *Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.player
}

// El returns the component's backing element, or nil after disposal (or when
// construction was told not to create one).
func (c *Component) El() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.el
}

// ContentEl returns the element children render into. It defaults to the
// component's own element; definitions with a CreateContent trait override
// it.
func (c *Component) ContentEl() *dom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contentEl
}

// Logger returns the component's structured logger.
func (c *Component) Logger() *Logger {
	return c.logger
}

// Disposed reports whether Dispose has run.
func (c *Component) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Options returns the component's current merged options when called with
// nil, or deep-merges overrides into them and returns the result. The
// returned tree is a copy either way; the component's internal options never
// alias caller-owned data.
func (c *Component) Options(overrides Options) (Options, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil, errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "Options", "options access")
	}
	if overrides != nil {
		c.opts = Merge(c.opts, overrides)
	}
	return c.opts.Clone(), nil
}

// Ready registers fn to run when the component becomes ready. Before
// TriggerReady, callbacks queue in registration order; afterwards they run
// synchronously and immediately.
func (c *Component) Ready(fn ReadyFunc) error {
	if fn == nil {
		return nil
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "Ready", "callback registration")
	}
	if !c.isReady {
		c.readyQueue = append(c.readyQueue, fn)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	fn(c)
	return nil
}

// IsReady reports whether TriggerReady has run.
func (c *Component) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isReady
}

// TriggerReady transitions the component to ready, draining the queued
// callbacks exactly once in registration order. A single ready event is
// emitted only if the queue was non-empty. Further calls are no-ops.
func (c *Component) TriggerReady() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "TriggerReady", "ready transition")
	}
	if c.isReady {
		c.mu.Unlock()
		return nil
	}
	c.isReady = true
	queue := c.readyQueue
	c.readyQueue = nil
	c.mu.Unlock()

	for _, fn := range queue {
		fn(c)
	}
	if len(queue) > 0 {
		return c.TriggerEvent(newNonBubbling(EventReady))
	}
	return nil
}

// Dispose tears the component down exactly once, in strict order:
//
//  1. a non-bubbling dispose event fires on the component's own element,
//     retiring outgoing cross-component subscriptions and pending timers;
//  2. every child is disposed, in reverse creation order;
//  3. the child list and both indices are cleared;
//  4. every listener still bound to the component's element is removed;
//  5. the element is detached from its parent, if attached;
//  6. auxiliary per-element bookkeeping is released;
//  7. the element reference is nulled.
//
// The ordering guarantees a component never receives events after its
// children begin disposing, and that foreign components subscribed to this
// one are notified before the element goes away. Disposing twice is a caller
// error and returns a fatal classified error.
func (c *Component) Dispose() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errors.WrapFatal(errors.ErrDisposed, c.def.Name(), "Dispose", "repeat disposal")
	}
	c.disposed = true
	c.mu.Unlock()

	return c.teardown(true)
}

// abortConstruct tears down a component whose construction failed partway.
// Children adopted before the failure are disposed and the element is
// released. The component itself was never counted as created, so no
// lifecycle metrics fire for it.
func (c *Component) abortConstruct() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.mu.Unlock()

	_ = c.teardown(false)
}

// teardown runs disposal steps (1) through (7). recordMetrics is false only
// when construction failed before the component was counted as created.
func (c *Component) teardown(recordMetrics bool) error {
	c.mu.Lock()
	el := c.el
	kids := make([]*Component, len(c.children))
	copy(kids, c.children)
	c.mu.Unlock()

	// (1) Lifecycle cleanup listeners run first, while the element is intact.
	if el != nil {
		el.DispatchEvent(newNonBubbling(EventDispose))
	}

	// (2) Children, newest first.
	var errs []error
	for i := len(kids) - 1; i >= 0; i-- {
		if err := kids[i].Dispose(); err != nil {
			errs = append(errs, err)
		}
	}

	// (3) Tree state. Any subscription the dispose event did not retire is
	// marked cancelled here so stale handles are inert.
	c.mu.Lock()
	remaining := make([]*Subscription, 0, len(c.localSubs)+len(c.foreignSubs))
	for _, s := range c.localSubs {
		remaining = append(remaining, s)
	}
	for _, s := range c.foreignSubs {
		remaining = append(remaining, s)
	}
	c.children = nil
	c.childByID = nil
	c.childByName = nil
	c.readyQueue = nil
	c.localSubs = nil
	c.foreignSubs = nil
	c.timers = nil
	c.mu.Unlock()
	for _, s := range remaining {
		s.retire()
	}

	// (4)-(6) Element release.
	if el != nil {
		el.RemoveAllListeners()
		el.Detach()
		el.ClearData()
	}

	// (7)
	c.mu.Lock()
	c.el = nil
	c.contentEl = nil
	c.mu.Unlock()

	if recordMetrics {
		if m := c.deps.Metrics; m != nil {
			m.ComponentsDisposed.WithLabelValues(c.def.Name()).Inc()
			m.ComponentsActive.Dec()
		}
	}

	if len(errs) > 0 {
		return errors.Wrap(stderrors.Join(errs...), c.def.Name(), "Dispose", "child teardown")
	}
	return nil
}
