// File: discovery.go
// Title: Configuration File Discovery
// Description: Loads the first existing file from an ordered list of
//              candidate paths, falling back to defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: Ordered candidates with per-path requirement

package config

import (
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/utils/filex"
	"github.com/msto63/layerdeck/foundation/utils/stringx"
)

// Candidate is one path Discover tries. A Required candidate that does not
// exist is an error instead of being skipped.
type Candidate struct {
	Path     string
	Required bool
}

// DiscoveryOptions defines options for configuration discovery
type DiscoveryOptions struct {
	Candidates []Candidate
	EnvPrefix  string
	Defaults   map[string]interface{}
}

// Discover loads the first candidate that exists. Empty paths are ignored.
// When no candidate exists the result holds only the defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	for _, c := range options.Candidates {
		if stringx.IsBlank(c.Path) {
			continue
		}
		cfg, err := LoadWithOptions(c.Path, loadOptions)
		if err == nil {
			return cfg, nil
		}
		if mdwerror.HasCode(err, mdwerror.CodeNotFound) && !c.Required {
			continue
		}
		return nil, mdwerror.Wrap(err, "config discovery failed").
			WithOperation("config.Discover").
			WithDetail("configPath", c.Path)
	}

	return New(loadOptions), nil
}

// FindConfigFile returns the first candidate that exists, or ""
func FindConfigFile(candidates []Candidate) string {
	for _, c := range candidates {
		if c.Path == "" {
			continue
		}
		if filex.IsFile(c.Path) {
			return c.Path
		}
	}
	return ""
}
