// Package errors provides standardized error handling patterns for playerkit
// components.
//
// # Overview
//
// The package implements a two-class error classification for an in-process UI
// composition core: Invalid (bad configuration or input, recoverable by the
// caller) and Fatal (programmer misuse of the API, such as operating on a
// disposed component).
//
// The split mirrors how failures surface in the component tree. A child name
// that resolves to no registered type, or an option value of the wrong shape,
// is a configuration problem the host can validate and correct upstream.
// Triggering events on a component whose element has already been released is
// a lifecycle bug that should fail loudly in testing rather than leak
// listeners in production.
//
// The classification integrates with Go's standard error handling patterns,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if c.Disposed() {
//	    return errors.ErrDisposed
//	}
//
// Wrap errors with context for debugging:
//
//	if err := child.Dispose(); err != nil {
//	    return errors.Wrap(err, "Component", "Dispose", "child teardown")
//	}
//
// Check classification to decide how to surface a failure:
//
//	if err := tree.Build(cfg); err != nil {
//	    if errors.IsFatal(err) {
//	        log.Fatalf("lifecycle misuse: %v", err)
//	    }
//	    // invalid configuration: report and continue with defaults
//	}
//
// # Error Wrapping Pattern
//
// All wrapping follows the standardized format:
//
//	"component.method: action failed: <cause>"
//
// so every error in a chain names where it happened and what was being
// attempted, without callers parsing message strings.
package errors
