package parser

import (
	"errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

// ErrorSeparator joins line messages in ParseError.Error.
const ErrorSeparator = ";;"

// LineError is one problem found while scanning a document.
type LineError struct {
	// Line is the 1-based source line.
	Line    int
	Code    mdwerror.Code
	Message string
}

// String formats the error for display. The reported number is one past
// the source line, matching the messages users already know.
func (e LineError) String() string {
	return fmt.Sprintf("Line %d: %s", e.Line+1, e.Message)
}

// ParseError is the aggregate failure of a Parse call.
type ParseError struct {
	Errors []LineError
}

// Error joins every line message with ErrorSeparator.
func (e *ParseError) Error() string {
	return strings.Join(e.Messages(), ErrorSeparator)
}

// Messages returns the formatted line messages in document order.
func (e *ParseError) Messages() []string {
	out := make([]string, len(e.Errors))
	for i, le := range e.Errors {
		out[i] = le.String()
	}
	return out
}

// Codes returns the error code of every line error.
func (e *ParseError) Codes() []mdwerror.Code {
	out := make([]mdwerror.Code, len(e.Errors))
	for i, le := range e.Errors {
		out[i] = le.Code
	}
	return out
}

// AsParseError extracts a *ParseError from err.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// SplitMessages breaks an aggregate message back into its lines.
func SplitMessages(msg string) []string {
	if msg == "" {
		return nil
	}
	return strings.Split(msg, ErrorSeparator)
}

// collector accumulates line errors for a single parse.
type collector struct {
	errors []LineError
}

func (c *collector) add(line int, code mdwerror.Code, format string, args ...interface{}) {
	c.errors = append(c.errors, LineError{
		Line:    line,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// addErr records err, taking its code when it carries one.
func (c *collector) addErr(line int, err error) {
	if err == nil {
		return
	}
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		code = mdwerror.CodeInvalidFormat
	}
	msg := err.Error()
	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		msg = coded.Message()
	}
	c.errors = append(c.errors, LineError{Line: line, Code: code, Message: msg})
}

func (c *collector) empty() bool {
	return len(c.errors) == 0
}

func (c *collector) result() *ParseError {
	out := make([]LineError, len(c.errors))
	copy(out, c.errors)
	return &ParseError{Errors: out}
}
