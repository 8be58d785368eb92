// Package component implements the composition and lifecycle core of the
// playerkit UI toolkit: a tree of components, each owning a dom.Element, that
// can nest, listen for events across the tree, schedule disposal-scoped
// timers, and release every resource deterministically on teardown.
//
// # Architecture
//
// The package is built from a small number of cooperating pieces:
//
//   - Registry: a name → Definition table used for declarative child
//     construction. Lookup falls back to a deprecated global table with a
//     logged warning for compatibility with older integrations.
//   - Options: a deep-merge configuration model. Nested maps merge
//     recursively with override-wins semantics; everything else is replaced
//     wholesale. Merging never aliases caller-owned maps or slices.
//   - Definition: a component "type" represented as data (default options,
//     an element factory, and an init hook), linked to a parent Definition so
//     Extend chains of arbitrary depth behave like a prototype chain.
//   - Component: the tree node. It owns its element exclusively, indexes its
//     children by id and by name, queues ready callbacks, and wires event
//     subscriptions and timers into its own dispose event.
//
// # Lifecycle
//
// A component is created through a Definition (NewRoot for the tree root,
// New for children), lives under exactly one parent at a time, and dies
// exactly once via Dispose. Disposal runs in a strict order: the dispose
// event fires first (retiring outgoing subscriptions and pending timers),
// children are disposed in reverse creation order, the child list and
// indices are cleared, remaining element listeners are dropped, and only
// then is the element detached and released.
//
// Operating on a disposed component is a caller error. Mutating operations
// return a fatal classified error (errors.ErrDisposed) rather than silently
// doing nothing, so lifecycle bugs surface in testing instead of manifesting
// as leaked listeners.
//
// # Cross-component subscriptions
//
// When component A listens on component B, the returned Subscription owns
// three listeners: the forwarded handler on B's element, a cleanup listener
// on A's dispose event that unsubscribes from B, and a mirror listener on
// B's dispose event that removes the cleanup from A. Whichever side tears
// down first, no dangling reference survives, and cancelling the
// Subscription before either disposes removes all three together.
//
// # Concurrency
//
// Dispatch is synchronous: Trigger returns only after every listener has
// run, and listeners fire in registration order. Internal state is guarded
// by per-component and per-element locks, and listener tables are copied
// before invocation, so handlers may freely call back into the tree. Timer
// callbacks are delivered on timer goroutines; hosts that require a single
// UI goroutine should marshal in their callbacks.
package component
