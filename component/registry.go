package component

import (
	"sync"
	"unicode"

	"github.com/c360/playerkit/errors"
	"github.com/c360/playerkit/metric"
)

// Registry manages component type definitions by name. It provides
// thread-safe registration and lookup for declarative child construction:
// a `children` options entry names a type, the registry resolves it to a
// Definition, and the parent constructs the child through it.
//
// Names are stored case-preserving. Registration is additive for the life of
// the process; re-registering a name is last-write-wins by key, logged at
// warn level so competing initialization paths are visible.
type Registry struct {
	definitions map[string]*Definition
	metrics     *metric.Metrics
	mu          sync.RWMutex
}

// NewRegistry creates a new empty component registry
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
	}
}

// defaultRegistry is the process-wide registry used by AddChildNamed and the
// player tree builder. Libraries register their types here at module
// initialization.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SetMetrics attaches instrumentation to the registry. Pass nil to disable.
func (r *Registry) SetMetrics(m *metric.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = m
}

// Register stores def under name. An existing registration for the same name
// is replaced (last-write-wins) with a warning; callers that need to detect
// collisions should look the name up first.
func (r *Registry) Register(name string, def *Definition) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "name validation")
	}
	if def == nil {
		return errors.WrapInvalid(errors.ErrNilDefinition, "Registry", "Register", "definition validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[name]; exists {
		warningLogger().Warn("component type re-registered, previous definition replaced",
			"name", name)
	}
	r.definitions[name] = def
	return nil
}

// Get resolves a type name to its Definition. Resolution tries the exact
// name, then the title-cased form (so a child declared as "controlBar"
// resolves a type registered as "ControlBar"), then the deprecated global
// table. The global fallback warns, since global registration is only kept
// for compatibility with pre-registry integrations.
func (r *Registry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	def, ok := r.definitions[name]
	if !ok {
		def, ok = r.definitions[TitleCase(name)]
	}
	m := r.metrics
	r.mu.RUnlock()

	if ok {
		if m != nil {
			m.RegistryLookups.WithLabelValues("hit").Inc()
		}
		return def, true
	}

	if def, ok = lookupGlobal(name); ok {
		warningLogger().Warn("component type resolved through the deprecated global table; "+
			"register it with a Registry instead", "name", name)
		if m != nil {
			m.RegistryLookups.WithLabelValues("deprecated").Inc()
		}
		return def, true
	}

	if m != nil {
		m.RegistryLookups.WithLabelValues("miss").Inc()
	}
	return nil, false
}

// Names returns all registered type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	return names
}

// TitleCase upper-cases the first rune of name, the conventional mapping from
// a child option key ("controlBar") to a registered class-style type name
// ("ControlBar").
func TitleCase(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Deprecated global namespace.
//
// Early playerkit integrations registered component types in a single shared
// table with no registry object. Get falls back here so those trees keep
// constructing; new code must use Registry.Register.

var (
	globalMu    sync.RWMutex
	globalTypes = make(map[string]*Definition)
)

// RegisterGlobal stores def in the deprecated process-global table.
//
// Deprecated: use Registry.Register. Lookups that resolve through this table
// emit a warning.
func RegisterGlobal(name string, def *Definition) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "RegisterGlobal", "name validation")
	}
	if def == nil {
		return errors.WrapInvalid(errors.ErrNilDefinition, "Registry", "RegisterGlobal", "definition validation")
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	globalTypes[name] = def
	return nil
}

func lookupGlobal(name string) (*Definition, bool) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if def, ok := globalTypes[name]; ok {
		return def, true
	}
	def, ok := globalTypes[TitleCase(name)]
	return def, ok
}

// resetGlobalForTest clears the deprecated table; test helper only.
func resetGlobalForTest() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalTypes = make(map[string]*Definition)
}

// ValidateComponentName validates type and instance names: non-empty, and
// limited to alphanumerics, dash, underscore and dot.
func ValidateComponentName(name string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "ValidateComponentName", "empty name")
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.') {
			return errors.WrapInvalid(
				errors.ErrInvalidConfig, "Registry", "ValidateComponentName",
				"invalid name characters")
		}
	}
	return nil
}
