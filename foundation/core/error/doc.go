// Package error provides coded, contextual errors for chronos.
//
// Package: error
// Title: Chronos Error Handling
// Description: Structured errors carrying a Code, a Severity and free-form
//              details. The calendar subsystem and the timeline parser use
//              the codes to classify every problem found in a document, and
//              the CLI wraps I/O failures with the same type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Parse taxonomy codes, dropped request/user context
//
// Usage:
//
//	import mdwerror "github.com/msto63/chronos/foundation/core/error"
//
//	err := mdwerror.New("Invalid month: 13. Must be between 01-12").
//		WithCode(mdwerror.CodeDateRange).
//		WithDetail("component", "month")
//
//	if mdwerror.HasCode(err, mdwerror.CodeDateRange) {
//		// out-of-range component
//	}
package error
