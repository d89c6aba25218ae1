// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads key/value configuration from TOML or YAML
//              files with defaults and environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Dropped hot reload and caches, added candidate discovery

/*
Package config loads configuration files into a nested key/value tree.

Keys use dot notation ("log.level"). A value is looked up in this order: the
environment variable derived from the key (with prefix LAYERDECK, "log.level"
becomes LAYERDECK_LOG_LEVEL), the loaded file, the defaults passed in
LoadOptions.

# Loading

	cfg, err := config.LoadWithOptions("layerdeck.toml", config.LoadOptions{
		EnvPrefix: "LAYERDECK",
		Defaults:  map[string]interface{}{"log": map[string]interface{}{"level": "info"}},
	})
	level := cfg.GetString("log.level")

The format follows the file extension: .yaml and .yml are YAML, anything else
is TOML.

# Discovery

Discover walks a list of candidate paths and loads the first that exists. A
missing candidate is skipped unless it was marked as required, which is how an
explicit --config flag is honoured.

# Validation

	err := cfg.Validate(config.ValidationRules{
		"output.format": {Type: "string", OneOf: []string{"tree", "json", "yaml"}},
	})

All violations are reported in one CONFIG_ERROR.
*/
package config
