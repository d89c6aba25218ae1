// Package error provides structured, coded errors for layerdeck.
//
// Package: error
// Title: layerdeck Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. Codes let callers tell grammar
//              failures, addressing failures and I/O failures apart without
//              string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Codes narrowed to the layer catalog domain, stack pooling removed
//
// Usage:
//
//	import mdwerror "github.com/msto63/layerdeck/foundation/core/error"
//
//	err := mdwerror.New("position not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithOperation("document.ToggleVisible").
//		WithDetail("pos", pos.String())
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// ...
//	}
package error
