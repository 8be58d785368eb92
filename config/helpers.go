package config

import (
	"fmt"
)

// Safe type assertion helpers prevent panics when reading dynamic option
// trees. The component layer routes its typed option reads through these, so
// the numeric coercion rules for decoded YAML/JSON live in one place.

// GetString safely extracts a string value from an options map
func GetString(opts map[string]any, key string, defaultVal string) string {
	if val, ok := opts[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultVal
}

// GetInt safely extracts an integer value from an options map. YAML and JSON
// decoders disagree on numeric types, so every common width is accepted.
func GetInt(opts map[string]any, key string, defaultVal int) int {
	if val, ok := opts[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case int32:
			return int(v)
		case float64:
			return int(v)
		case float32:
			return int(v)
		}
	}
	return defaultVal
}

// GetFloat64 safely extracts a float64 value from an options map
func GetFloat64(opts map[string]any, key string, defaultVal float64) float64 {
	if val, ok := opts[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case int32:
			return float64(v)
		}
	}
	return defaultVal
}

// GetBool safely extracts a boolean value from an options map
func GetBool(opts map[string]any, key string, defaultVal bool) bool {
	if val, ok := opts[key]; ok {
		if boolVal, ok := val.(bool); ok {
			return boolVal
		}
	}
	return defaultVal
}

// GetComponentOptions extracts one instance's options from a Config,
// distinguishing missing from disabled.
func (c *Config) GetComponentOptions(name string) (map[string]any, error) {
	opts, ok := c.Components[name]
	if !ok {
		return nil, fmt.Errorf("component %s not found", name)
	}
	if opts == nil {
		return nil, fmt.Errorf("component %s is disabled", name)
	}
	return deepCopyMap(opts), nil
}
