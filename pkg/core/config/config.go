// Package config holds the layerdeck application settings
package config

import (
	"os"
	"path/filepath"

	mdwconfig "github.com/msto63/layerdeck/foundation/core/config"
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

const (
	// EnvPrefix prefixes every environment override (LAYERDECK_LOG_LEVEL)
	EnvPrefix = "LAYERDECK"

	// EnvConfig names a config file to load
	EnvConfig = "LAYERDECK_CONFIG"
)

// Output formats for the inspect command
const (
	OutputTree = "tree"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `yaml:"log" json:"log"`
	Output OutputConfig `yaml:"output" json:"output"`
	SVG    SVGConfig    `yaml:"svg" json:"svg"`
	TUI    TUIConfig    `yaml:"tui" json:"tui"`

	// Source is the file the settings were read from, empty for defaults
	Source string `yaml:"-" json:"-"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// OutputConfig holds settings for printed documents
type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
	Color  bool   `yaml:"color" json:"color"`
}

// SVGConfig holds settings for writing edited documents
type SVGConfig struct {
	InPlace bool `yaml:"in_place" json:"in_place"`
}

// TUIConfig holds layer panel settings
type TUIConfig struct {
	ShowIDs bool `yaml:"show_ids" json:"show_ids"`
}

// Defaults returns the default settings tree
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
			"file":   "",
		},
		"output": map[string]interface{}{
			"format": OutputTree,
			"color":  true,
		},
		"svg": map[string]interface{}{
			"in_place": false,
		},
		"tui": map[string]interface{}{
			"show_ids": false,
		},
	}
}

// Rules returns the validation rules for the settings tree
func Rules() mdwconfig.ValidationRules {
	return mdwconfig.ValidationRules{
		"log.level":     {Required: true, OneOf: []string{"trace", "debug", "info", "warn", "warning", "error"}},
		"log.format":    {Required: true, OneOf: []string{"text", "json"}},
		"output.format": {Required: true, OneOf: []string{OutputTree, OutputJSON, OutputYAML}},
		"output.color":  {Type: "bool"},
		"svg.in_place":  {Type: "bool"},
		"tui.show_ids":  {Type: "bool"},
	}
}

// Candidates lists the files to try, in order: the explicit path, the file
// named by LAYERDECK_CONFIG, ./layerdeck.toml, ./layerdeck.yaml and
// $HOME/.config/layerdeck/config.toml. The first two must exist when given.
func Candidates(explicit string) []mdwconfig.Candidate {
	candidates := []mdwconfig.Candidate{
		{Path: explicit, Required: true},
		{Path: os.Getenv(EnvConfig), Required: true},
		{Path: "layerdeck.toml"},
		{Path: "layerdeck.yaml"},
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, mdwconfig.Candidate{
			Path: filepath.Join(home, ".config", "layerdeck", "config.toml"),
		})
	}
	return candidates
}

// Load discovers, validates and decodes the settings
func Load(explicit string) (*Config, error) {
	raw, err := mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Candidates: Candidates(explicit),
		EnvPrefix:  EnvPrefix,
		Defaults:   Defaults(),
	})
	if err != nil {
		return nil, err
	}
	return FromTree(raw)
}

// FromTree validates a loaded tree and decodes it into a Config
func FromTree(raw *mdwconfig.Config) (*Config, error) {
	if err := raw.Validate(Rules()); err != nil {
		return nil, mdwerror.Wrap(err, "load settings").WithOperation("config.FromTree")
	}

	return &Config{
		Log: LogConfig{
			Level:  raw.GetString("log.level"),
			Format: raw.GetString("log.format"),
			File:   raw.GetString("log.file"),
		},
		Output: OutputConfig{
			Format: raw.GetString("output.format"),
			Color:  raw.GetBool("output.color"),
		},
		SVG: SVGConfig{
			InPlace: raw.GetBool("svg.in_place"),
		},
		TUI: TUIConfig{
			ShowIDs: raw.GetBool("tui.show_ids"),
		},
		Source: raw.FilePath(),
	}, nil
}
