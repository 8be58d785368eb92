package component

import (
	"github.com/c360/playerkit/config"
)

// Options is the configuration model for components: a string-keyed tree of
// values. Nested plain maps are the only values merged recursively; slices
// and scalars are replaced wholesale, including explicit nil/false used to
// disable a default feature or child.
type Options map[string]any

// Clone returns a deep copy of the options tree. Nested maps and slices are
// copied; scalar values are shared (they are immutable).
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = copyValue(v)
	}
	return out
}

// Merge deep-merges overrides into base and returns the combined options as a
// fresh tree. For every key present in either side: if both values are plain
// maps they merge recursively with override keys winning; otherwise the
// override value replaces the base value wholesale. Neither input is mutated,
// and no map or slice reachable from either input is aliased into the result,
// so later external mutation of a caller's options cannot corrupt the merged
// state.
//
// Merge is associative on disjoint key paths: folding b then c into a yields
// the same tree as merging a with an already-merged b+c, as long as b and c
// touch different paths.
func Merge(base, overrides Options) Options {
	result := base.Clone()
	if result == nil {
		result = make(Options, len(overrides))
	}
	for k, ov := range overrides {
		bm, baseIsMap := asOptions(result[k])
		om, overIsMap := asOptions(ov)
		if baseIsMap && overIsMap {
			result[k] = Merge(bm, om)
		} else {
			result[k] = copyValue(ov)
		}
	}
	return result
}

// asOptions normalizes the two map shapes that appear in option trees
// (Options literals and map[string]any decoded from JSON/YAML).
func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, true
	case map[string]any:
		return Options(m), true
	default:
		return nil, false
	}
}

func copyValue(v any) any {
	switch val := v.(type) {
	case Options:
		return val.Clone()
	case map[string]any:
		return map[string]any(Options(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}

// GetString safely extracts a string value from options with a default
// fallback.
func (o Options) GetString(key, defaultVal string) string {
	return config.GetString(o, key, defaultVal)
}

// GetBool safely extracts a boolean value from options with a default
// fallback.
func (o Options) GetBool(key string, defaultVal bool) bool {
	return config.GetBool(o, key, defaultVal)
}

// GetInt safely extracts an integer value from options with a default
// fallback, accepting the numeric widths YAML/JSON decoders produce.
func (o Options) GetInt(key string, defaultVal int) int {
	return config.GetInt(o, key, defaultVal)
}

// GetOptions safely extracts a nested options map, or nil when the key is
// absent or not a map.
func (o Options) GetOptions(key string) Options {
	if v, ok := o[key]; ok {
		if m, ok := asOptions(v); ok {
			return m
		}
	}
	return nil
}

// IsExplicitlyDisabled reports whether key is present with a falsey value
// (false or nil), the declarative opt-out for a default child or feature.
func (o Options) IsExplicitlyDisabled(key string) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	if v == nil {
		return true
	}
	b, isBool := v.(bool)
	return isBool && !b
}
