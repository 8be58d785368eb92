// Package dom provides the minimal element model the playerkit component tree
// renders into. It is not a browser DOM: it is an in-process stand-in with the
// small surface the component core needs: tree attachment, attributes, class
// lists, inline style, and synchronous event dispatch with listener tables.
//
// Elements are safe for concurrent use. Event dispatch copies the listener
// slice before invoking handlers, so a handler may add or remove listeners
// (including itself) without corrupting the dispatch in progress. Listeners
// for one dispatched event always fire in registration order.
//
// Host integrations (a wasm/js bridge, a test harness, a headless renderer)
// are expected to mirror this model onto a real render target. The component
// core in package component never reaches past this surface.
package dom
