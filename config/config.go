package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete player configuration: toolkit identity,
// logging and metrics settings, root player options, and per-instance
// component option trees.
type Config struct {
	Version    string           `json:"version" yaml:"version"`
	Player     PlayerConfig     `json:"player" yaml:"player"`
	Logging    LoggingConfig    `json:"logging,omitempty" yaml:"logging,omitempty"`
	Metrics    MetricsConfig    `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Components ComponentConfigs `json:"components,omitempty" yaml:"components,omitempty"`
}

// ComponentConfigs holds per-instance component option trees. The map key is
// the child name (e.g. "controlBar"); the value is the raw options map passed
// to that component's constructor. A bare false (or null) value in the source
// document marks the instance disabled and is stored as nil; a bare true
// enables it with default options.
type ComponentConfigs map[string]map[string]any

// UnmarshalYAML implements yaml.Unmarshaler, accepting per-instance values
// that are mappings, booleans, or null.
func (cc *ComponentConfigs) UnmarshalYAML(node *yaml.Node) error {
	raw := map[string]any{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return cc.fromRaw(raw)
}

// UnmarshalJSON implements json.Unmarshaler with the same value forms.
func (cc *ComponentConfigs) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return cc.fromRaw(raw)
}

func (cc *ComponentConfigs) fromRaw(raw map[string]any) error {
	out := make(ComponentConfigs, len(raw))
	for name, v := range raw {
		switch val := v.(type) {
		case nil:
			out[name] = nil
		case bool:
			if val {
				out[name] = map[string]any{}
			} else {
				out[name] = nil
			}
		case map[string]any:
			out[name] = val
		default:
			return fmt.Errorf("component %s: expected options map or boolean, got %T", name, v)
		}
	}
	*cc = out
	return nil
}

// Disabled reports whether the named instance is configured off.
func (cc ComponentConfigs) Disabled(name string) bool {
	opts, ok := cc[name]
	return ok && opts == nil
}

// PlayerConfig defines the root player component's options.
type PlayerConfig struct {
	ID                  string   `json:"id,omitempty" yaml:"id,omitempty"`
	Width               int      `json:"width,omitempty" yaml:"width,omitempty"`
	Height              int      `json:"height,omitempty" yaml:"height,omitempty"`
	InactivityTimeout   Duration `json:"inactivity_timeout,omitempty" yaml:"inactivity_timeout,omitempty"`
	ReportTouchActivity *bool    `json:"report_touch_activity,omitempty" yaml:"report_touch_activity,omitempty"`
	EmitTapEvents       bool     `json:"emit_tap_events,omitempty" yaml:"emit_tap_events,omitempty"`
	Children            []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// LoggingConfig defines structured logging settings.
type LoggingConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // text, json
}

// SlogLevel maps the configured level name to a slog level. Unknown or empty
// names map to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MetricsConfig defines the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Duration wraps time.Duration so "2s"-style strings parse from both YAML and
// JSON documents.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.parse(raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.parse(raw)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) parse(raw string) error {
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns the baseline configuration an unconfigured host runs
// with.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Player: PlayerConfig{
			InactivityTimeout: Duration(2 * time.Second),
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Port: 9090, Path: "/metrics"},
	}
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}

	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port %d is out of range", c.Metrics.Port)
	}
	if c.Metrics.Path != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path)
	}

	if c.Player.Width < 0 || c.Player.Height < 0 {
		return errors.New("player dimensions must be non-negative")
	}
	if c.Player.InactivityTimeout < 0 {
		return errors.New("player.inactivity_timeout must be non-negative")
	}

	for name := range c.Components {
		if strings.TrimSpace(name) == "" {
			return errors.New("components contains an empty instance name")
		}
	}

	for _, name := range c.Player.Children {
		if strings.TrimSpace(name) == "" {
			return errors.New("player.children contains an empty name")
		}
	}

	return nil
}

// Options flattens the player section and the component map into a single
// options tree in the shape the component constructors consume. The result is
// freshly built on every call and never aliases the config.
func (c *Config) Options() map[string]any {
	opts := make(map[string]any)

	if c.Player.ID != "" {
		opts["id"] = c.Player.ID
	}
	if c.Player.Width > 0 {
		opts["width"] = c.Player.Width
	}
	if c.Player.Height > 0 {
		opts["height"] = c.Player.Height
	}
	if c.Player.InactivityTimeout > 0 {
		opts["inactivityTimeout"] = c.Player.InactivityTimeout.Std()
	}
	if c.Player.ReportTouchActivity != nil {
		opts["reportTouchActivity"] = *c.Player.ReportTouchActivity
	}
	if c.Player.EmitTapEvents {
		opts["emitTapEvents"] = true
	}

	switch {
	case len(c.Player.Children) > 0:
		// Ordered form: each entry becomes {name: ..., opts...}. Instances
		// configured off are dropped from the list.
		children := make([]any, 0, len(c.Player.Children))
		for _, name := range c.Player.Children {
			if c.Components.Disabled(name) {
				continue
			}
			entry := map[string]any{"name": name}
			if compOpts, err := c.GetComponentOptions(name); err == nil {
				for k, v := range compOpts {
					entry[k] = v
				}
			}
			children = append(children, entry)
		}
		opts["children"] = children
	case len(c.Components) > 0:
		children := make(map[string]any, len(c.Components))
		for name, compOpts := range c.Components {
			if compOpts == nil {
				children[name] = false
				continue
			}
			children[name] = deepCopyMap(compOpts)
		}
		opts["children"] = children
	}

	return opts
}

// SafeConfig provides thread-safe access to configuration
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig creates a new thread-safe config wrapper
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SafeConfig{config: cfg}
}

// Get returns a deep copy of the current configuration
func (sc *SafeConfig) Get() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Clone()
}

// Update atomically updates the configuration after validation
func (sc *SafeConfig) Update(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	if c.Player.ReportTouchActivity != nil {
		v := *c.Player.ReportTouchActivity
		clone.Player.ReportTouchActivity = &v
	}
	if c.Player.Children != nil {
		clone.Player.Children = append([]string(nil), c.Player.Children...)
	}
	if c.Components != nil {
		clone.Components = make(ComponentConfigs, len(c.Components))
		for name, opts := range c.Components {
			clone.Components[name] = deepCopyMap(opts)
		}
	}
	return &clone
}

func deepCopyMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]any:
			dst[k] = deepCopyMap(val)
		case []any:
			s := make([]any, len(val))
			for i, item := range val {
				if m, ok := item.(map[string]any); ok {
					s[i] = deepCopyMap(m)
				} else {
					s[i] = item
				}
			}
			dst[k] = s
		default:
			dst[k] = v
		}
	}
	return dst
}
