// Package log provides structured logging for layerdeck.
//
// Package: log
// Title: layerdeck Structured Logging
// Description: Leveled, structured logging with JSON and text output. Loggers
//              are immutable values: every With* call returns a configured
//              copy, so a component can carry its own name and fields without
//              affecting the caller's logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: Dropped async buffering, timers and request context
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithField("component", "session")
//	logger.Info("layer toggled", log.Fields{"pos": "c:1/2"})
//	logger.LogError(err)
package log
