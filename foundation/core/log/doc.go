// Package log provides structured logging for chronos.
//
// Package: log
// Title: Chronos Structured Logging
// Description: Leveled, structured logging with JSON, text and console
//              formats. Loggers are immutable: every With* call returns a
//              clone, so a parser can tag its own copy with a request id
//              without touching the shared default logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Dropped async and audit paths, deterministic field order
//
// Usage:
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "parser")
//
//	logger.Warn("Color not recognized", mdwlog.Fields{"line": 4, "color": "teal"})
//
//	timer := logger.StartTimer("parse")
//	// ... parse a document
//	timer.Stop()
package log
