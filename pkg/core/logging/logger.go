// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     logging
// Description: Process logger that owns its optional log file
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"os"

	mdwlog "github.com/msto63/layerdeck/foundation/core/log"
)

// Logger wraps the foundation logger together with the file it writes to
type Logger struct {
	*mdwlog.Logger
	file *os.File
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
