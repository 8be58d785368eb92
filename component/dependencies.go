package component

import (
	"log/slog"

	"github.com/c360/playerkit/metric"
)

// Dependencies provides the external collaborators a component tree needs.
// They are supplied once, at root construction, and inherited by every
// descendant; all fields are optional.
type Dependencies struct {
	Logger   *slog.Logger    // Structured logger (nil defaults to slog.Default())
	Metrics  *metric.Metrics // Instrumentation (nil disables)
	Registry *Registry       // Type registry for declarative children (nil uses DefaultRegistry)
}

// GetLogger returns the configured logger or the default logger if none is
// provided
func (d *Dependencies) GetLogger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// GetRegistry returns the configured registry or the process-wide default.
func (d *Dependencies) GetRegistry() *Registry {
	if d.Registry != nil {
		return d.Registry
	}
	return DefaultRegistry()
}
