// Package fault classifies interpreter failures.
package fault

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure class.
type Code string

const (
	// CodeUnknown is returned for errors that did not come from this package.
	CodeUnknown Code = "UNKNOWN"

	// CodeParse covers malformed syntax, unmatched delimiters and unknown modifiers.
	CodeParse Code = "PARSE"
	// CodeBinding covers undefined names, unknown functions and argument mismatches.
	CodeBinding Code = "BINDING"
	// CodeAlgebra covers zero divisors and non-finite results.
	CodeAlgebra Code = "ALGEBRA"
	// CodeAssertion is raised by the assert built-in.
	CodeAssertion Code = "ASSERTION"
)

// Error is a classified failure, optionally attached to a program line.
type Error struct {
	Code    Code
	Line    int // 1-based, 0 when unknown
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Parse creates a CodeParse error.
func Parse(format string, args ...any) *Error {
	return New(CodeParse, format, args...)
}

// Binding creates a CodeBinding error.
func Binding(format string, args ...any) *Error {
	return New(CodeBinding, format, args...)
}

// Algebra creates a CodeAlgebra error.
func Algebra(format string, args ...any) *Error {
	return New(CodeAlgebra, format, args...)
}

// Assertion creates a CodeAssertion error.
func Assertion(format string, args ...any) *Error {
	return New(CodeAssertion, format, args...)
}

// AtLine attaches a line number to err. Errors of other types are wrapped
// with CodeUnknown; an already numbered error keeps its line.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Line != 0 {
			return err
		}
		cp := *e
		cp.Line = line
		return &cp
	}
	return &Error{Code: CodeUnknown, Line: line, Err: err}
}

// GetCode extracts the failure code from any error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// LineOf returns the line an error is attached to, or 0.
func LineOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}
