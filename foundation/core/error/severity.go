// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can decide how loudly to report them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Severity mapping for parse codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in user input, e.g. one bad line in a document
	SeverityLow Severity = iota

	// SeverityMedium affects a whole operation but has a workaround
	SeverityMedium

	// SeverityHigh prevents an operation from completing
	SeverityHigh

	// SeverityCritical makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeStorageError, CodeIOError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeParseFailed:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidFormat, CodeDateFormat,
		CodeDateRange, CodeCalendarInfeasible, CodeSeparator, CodeChronology,
		CodeUnknownDirective, CodeDirectiveArgument, CodeUnknownColor,
		CodeReference, CodeArrowType, CodeUnrecognizedLine:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
