// Package config provides configuration management for PlayerKit hosts.
//
// This package handles loading and validation of player configuration from
// YAML and JSON files, with layer merging for deployment overrides.
//
// # Core Components
//
// Config: Main configuration structure containing the root player's options,
// logging and metrics settings, and per-instance component option trees.
//
// SafeConfig: Thread-safe wrapper using RWMutex and deep cloning to prevent
// concurrent access issues and accidental mutations.
//
// Loader: Loads configuration with layer merging (base + overrides); later
// layers win key by key, with nested maps merged recursively.
//
// # Basic Usage
//
// Loading configuration from files with layer merging:
//
//	loader := config.NewLoader()
//	loader.AddLayer("config/base.yaml")
//	loader.AddLayer("config/production.yaml") // Overrides base
//
//	cfg, err := loader.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The flattened options tree feeds straight into the player constructor:
//
//	opts := component.Options(cfg.Options())
//
// # Component Instances
//
// The components section keys instances by child name. A value of false (or
// null) disables an instance; true enables it with default options:
//
//	player:
//	  children: [controlBar, bigPlayButton]
//	components:
//	  controlBar:
//	    volumeControl: false
//	  bigPlayButton: false
//
// # Thread-Safe Access
//
//	safe := config.NewSafeConfig(cfg)
//	current := safe.Get()          // deep copy, safe to use
//	err := safe.Update(newConfig)  // validated, atomic
//
// # Security
//
// File loading enforces a 10MB size limit and rejects non-regular files.
package config
