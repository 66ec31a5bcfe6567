// Package errors provides structured error handling for LambdaDB.
//
// Every failure the core can report is an *Error carrying an ErrorType, a
// human-readable message, and a Details map with the positional context
// (field index, row, expected and actual types or counts). Callers branch on
// the type with IsType or TypeOf and read the context with DetailInt or the
// Details map directly.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeInternal represents internal system errors
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeValidation represents malformed field or schema input
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeCapability represents types or features LambdaDB does not support
	ErrorTypeCapability ErrorType = "capability"
	// ErrorTypeTypeMismatch represents a value or column whose type disagrees with
	// the declared type
	ErrorTypeTypeMismatch ErrorType = "type_mismatch"
	// ErrorTypeArityMismatch represents a column count that differs from the
	// schema's field count
	ErrorTypeArityMismatch ErrorType = "arity_mismatch"
	// ErrorTypeNullabilityViolation represents a null in a non-nullable field
	ErrorTypeNullabilityViolation ErrorType = "nullability_violation"
	// ErrorTypeRowCountMismatch represents columns that disagree on their length
	ErrorTypeRowCountMismatch ErrorType = "row_count_mismatch"
)

// Detail keys shared by the packages that build errors.
const (
	DetailIndex    = "index"
	DetailRow      = "row"
	DetailExpected = "expected"
	DetailActual   = "actual"
	DetailField    = "field"
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// DetailInt returns an integer detail. ok is false when the key is missing or
// holds a non-integer value.
func (e *Error) DetailInt(key string) (int, bool) {
	v, ok := e.Details[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new error with a formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// TypeOf returns the type of the outermost *Error in err's chain, or the empty
// type when err carries none.
func TypeOf(err error) ErrorType {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Type
}

// As is errors.As, re-exported so callers importing this package under the
// name errors keep access to it.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
