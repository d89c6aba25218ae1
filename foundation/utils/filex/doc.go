// Package filex holds the file helpers layerdeck needs on top of package os.
//
// Package: filex
// Title: File Helpers
// Description: Existence checks and atomic replacement of files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-15 v0.2.0: Reduced to existence checks and atomic writes
//
// # Atomic writes
//
// WriteAtomic streams content into a temporary file next to the target and
// renames it over the target only after the content was written and closed,
// so readers see either the old or the new file:
//
//	err := filex.WriteAtomic("art.svg", 0o644, func(w io.Writer) error {
//		_, err := doc.WriteTo(w)
//		return err
//	})
//
// An existing target keeps its permission bits.
package filex
