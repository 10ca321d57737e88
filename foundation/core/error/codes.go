// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across chronos. The parse codes
//              mirror the problems a timeline document can contain; the
//              generic codes cover configuration, storage and I/O.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Timeline parse taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeStorageError  Code = "STORAGE_ERROR"
	CodeIOError       Code = "IO_ERROR"

	// Timeline documents
	CodeParseFailed        Code = "PARSE_FAILED"
	CodeInvalidFormat      Code = "INVALID_FORMAT"
	CodeDateFormat         Code = "DATE_FORMAT"
	CodeDateRange          Code = "DATE_RANGE"
	CodeCalendarInfeasible Code = "CALENDAR_INFEASIBLE"
	CodeSeparator          Code = "SEPARATOR"
	CodeChronology         Code = "CHRONOLOGY"
	CodeUnknownDirective   Code = "UNKNOWN_DIRECTIVE"
	CodeDirectiveArgument  Code = "DIRECTIVE_ARGUMENT"
	CodeUnknownColor       Code = "UNKNOWN_COLOR"
	CodeReference          Code = "REFERENCE"
	CodeArrowType          Code = "ARROW_TYPE"
	CodeUnrecognizedLine   Code = "UNRECOGNIZED_LINE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig, CodeStorageError, CodeIOError,
		CodeParseFailed, CodeInvalidFormat, CodeDateFormat, CodeDateRange,
		CodeCalendarInfeasible, CodeSeparator, CodeChronology,
		CodeUnknownDirective, CodeDirectiveArgument, CodeUnknownColor,
		CodeReference, CodeArrowType, CodeUnrecognizedLine:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDateFormat, CodeDateRange, CodeCalendarInfeasible, CodeChronology:
		return "date"
	case CodeParseFailed, CodeInvalidFormat, CodeSeparator, CodeUnrecognizedLine:
		return "syntax"
	case CodeUnknownDirective, CodeDirectiveArgument:
		return "directive"
	case CodeReference, CodeArrowType:
		return "arrow"
	case CodeUnknownColor:
		return "style"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorageError, CodeIOError:
		return "storage"
	default:
		return "generic"
	}
}

// IsWarning reports whether errors with this code are reported but never
// fail a parse.
func (c Code) IsWarning() bool {
	return c == CodeUnknownColor
}
