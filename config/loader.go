package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/playerkit/errors"
)

// maxConfigSize caps a single config file at 10MB.
const maxConfigSize = 10 * 1024 * 1024

// Loader loads configuration from layered YAML or JSON files. Layers merge
// with last-wins semantics: later layers override earlier ones key by key,
// with nested maps merged recursively.
type Loader struct {
	layers   []string
	validate bool
}

// NewLoader creates a loader with validation enabled.
func NewLoader() *Loader {
	return &Loader{validate: true}
}

// AddLayer appends a config file path. Files are applied in the order added.
func (l *Loader) AddLayer(path string) *Loader {
	l.layers = append(l.layers, path)
	return l
}

// EnableValidation toggles Validate after the final merge.
func (l *Loader) EnableValidation(on bool) *Loader {
	l.validate = on
	return l
}

// Load reads and merges every layer over the defaults and returns the result.
func (l *Loader) Load() (*Config, error) {
	merged := map[string]any{}
	for _, path := range l.layers {
		layer, err := readRawFile(path)
		if err != nil {
			return nil, err
		}
		merged = mergeRaw(merged, layer)
	}

	cfg := DefaultConfig()
	if len(merged) > 0 {
		// Round-trip through YAML so the merged raw tree decodes with the
		// same tags and custom unmarshalers as a single file would.
		data, err := yaml.Marshal(merged)
		if err != nil {
			return nil, errors.WrapFatal(err, "Loader", "Load", "re-encode merged layers")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "Load", "decode merged config")
		}
	}

	if l.validate {
		if err := cfg.Validate(); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "Load", "validate config")
		}
	}
	return cfg, nil
}

// LoadFile loads a single YAML or JSON config file with validation.
func LoadFile(path string) (*Config, error) {
	return NewLoader().AddLayer(path).Load()
}

// LoadYAML decodes a YAML document over the defaults.
func LoadYAML(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadYAML", "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadYAML", "validate config")
	}
	return cfg, nil
}

// LoadJSON decodes a JSON document over the defaults.
func LoadJSON(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadJSON", "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadJSON", "validate config")
	}
	return cfg, nil
}

func readRawFile(path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Load", fmt.Sprintf("stat %s", path))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%s is not a regular file", path),
			"Loader", "Load", "config file validation")
	}
	if info.Size() > maxConfigSize {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%s exceeds %d bytes", path, maxConfigSize),
			"Loader", "Load", "config file validation")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "Load", fmt.Sprintf("read %s", path))
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "Load", fmt.Sprintf("parse %s", path))
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "Load", fmt.Sprintf("parse %s", path))
		}
	}
	return raw, nil
}

// mergeRaw merges override into base, key by key. Nested maps merge
// recursively; every other value type replaces wholesale.
func mergeRaw(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		ov, ovOK := v.(map[string]any)
		bv, bvOK := out[k].(map[string]any)
		if ovOK && bvOK {
			out[k] = mergeRaw(bv, ov)
			continue
		}
		out[k] = v
	}
	return out
}
