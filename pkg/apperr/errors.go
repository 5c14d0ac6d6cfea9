// Package apperr provides the scheduling engine's error framework.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies a class of error.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Construction errors (spec.md §7.1).
	CodeConstructionError Code = "CONSTRUCTION_ERROR"
	CodeDuplicateID       Code = "DUPLICATE_EMPLOYEE_ID"
	CodeIDExhausted       Code = "ID_EXHAUSTED"

	// Solve outcomes (spec.md §7.2-7.4).
	CodeNoFeasibleSolution Code = "NO_FEASIBLE_SOLUTION"
	CodeSolveTimeout       Code = "SOLVE_TIMEOUT"
	CodeSolverError        Code = "SOLVER_ERROR"
)

// AppError is the scheduling engine's structured error type.
type AppError struct {
	Code    Code
	Message string
	Cause   error
	Fields  map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField attaches a structured field.
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New creates a new AppError.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Is reports whether err is an AppError of the given code.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode returns the code of err, or CodeUnknown if it is not an AppError.
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// ConstructionError reports an error in building the optimization model
// itself, e.g. an infeasible-by-construction capability requirement.
func ConstructionError(reason string) *AppError {
	return New(CodeConstructionError, reason)
}

// NoFeasibleSolution reports that the solver found the problem infeasible.
func NoFeasibleSolution(reason string) *AppError {
	return New(CodeNoFeasibleSolution, reason)
}

// IDExhausted reports that the roster's random id generator could not find
// a free id within its retry budget.
func IDExhausted(tries int) *AppError {
	return New(CodeIDExhausted, "no unique employee id available").WithField("tries", tries)
}
