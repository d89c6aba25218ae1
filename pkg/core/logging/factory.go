// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     logging
// Description: Builds the process logger from the log settings
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	mdwlog "github.com/msto63/layerdeck/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text"
	Format string

	// Verbose forces debug level
	Verbose bool

	// Output receives every entry (default: stderr)
	Output io.Writer

	// File additionally receives every entry when set; it is appended to
	File string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger for cfg. Close the result to release
// the log file.
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	const op = "logging.NewLogger"

	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op).
			WithDetail("level", cfg.Level)
	}
	if cfg.Verbose {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeConfigError).
			WithOperation(op).
			WithDetail("format", cfg.Format)
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var file *os.File
	if cfg.File != "" {
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, mdwerror.Wrap(err, "open log file").
				WithCode(mdwerror.CodeIOError).
				WithOperation(op).
				WithDetail("path", cfg.File)
		}
		output = io.MultiWriter(output, file)
	}

	return &Logger{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{
			Level:  level,
			Format: format,
			Output: output,
			Name:   cfg.Name,
		}),
		file: file,
	}, nil
}
