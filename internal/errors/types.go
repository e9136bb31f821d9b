// Package errors defines the structured error types returned by the
// textutils registry, dispatcher and configuration layers, together with the
// helpers that turn them into user-facing messages and process exit codes.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeUnknownCommand ErrorType = "unknown_command"
	ErrorTypeHandlerFailure ErrorType = "handler_failure"
	ErrorTypeValidation     ErrorType = "validation"
	ErrorTypeConfig         ErrorType = "config"
	ErrorTypeIO             ErrorType = "io"
	ErrorTypeInternal       ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeUnknownCommand   = "ERR_UNKNOWN_COMMAND"
	ErrCodeHandlerFailure   = "ERR_HANDLER_FAILURE"
	ErrCodeHandlerPanic     = "ERR_HANDLER_PANIC"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeConfigLocale     = "ERR_CONFIG_LOCALE"
	ErrCodeInputRead        = "ERR_INPUT_READ"
	ErrCodeOutputWrite      = "ERR_OUTPUT_WRITE"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeInternalError    = "ERR_INTERNAL"
)

// CommandError is a structured error type with context.
type CommandError struct {
	Type        ErrorType
	Code        string
	Command     string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Suggestions []string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Command != "" {
		parts = append(parts, "command:"+e.Command)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *CommandError) Is(target error) bool {
	var t *CommandError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *CommandError) WithContext(key string, value interface{}) *CommandError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithCommand sets the command the error refers to.
func (e *CommandError) WithCommand(name string) *CommandError {
	e.Command = name

	return e
}

// WithSuggestions appends hints shown to the user below the error.
func (e *CommandError) WithSuggestions(suggestions ...string) *CommandError {
	e.Suggestions = append(e.Suggestions, suggestions...)

	return e
}

// Error creation functions

// NewUnknownCommandError creates the error returned when a name is absent
// from the registry.
func NewUnknownCommandError(name string) *CommandError {
	return &CommandError{
		Type:    ErrorTypeUnknownCommand,
		Code:    ErrCodeUnknownCommand,
		Command: name,
		Message: fmt.Sprintf("unknown command %q", name),
	}
}

// NewHandlerFailure creates the error reported when a handler fails.
func NewHandlerFailure(name string, cause error) *CommandError {
	return &CommandError{
		Type:    ErrorTypeHandlerFailure,
		Code:    ErrCodeHandlerFailure,
		Command: name,
		Message: "command execution failed",
		Cause:   cause,
	}
}

// NewHandlerPanic creates the error reported when a handler panics.
func NewHandlerPanic(name string, recovered interface{}) *CommandError {
	return &CommandError{
		Type:    ErrorTypeHandlerFailure,
		Code:    ErrCodeHandlerPanic,
		Command: name,
		Message: "command execution failed",
		Cause:   fmt.Errorf("panic: %v", recovered),
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *CommandError {
	return &CommandError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *CommandError {
	return &CommandError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *CommandError {
	return &CommandError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *CommandError {
	return &CommandError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsUnknownCommand reports whether err is an unknown command error.
func IsUnknownCommand(err error) bool {
	return hasType(err, ErrorTypeUnknownCommand)
}

// IsHandlerFailure reports whether err is a handler failure.
func IsHandlerFailure(err error) bool {
	return hasType(err, ErrorTypeHandlerFailure)
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	return hasType(err, ErrorTypeConfig)
}

func hasType(err error, t ErrorType) bool {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Type == t
	}

	return false
}

// ErrorHandler provides centralized error handling.
//
// The user-facing report is written once by Print; Handle only records
// the structured details at debug level.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error with fields matching its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var ce *CommandError
	if !errors.As(err, &ce) {
		h.logger.Debug(ctx, "Unhandled error occurred", "error", err.Error())
		return
	}

	msg := "Command failed"
	switch ce.Type {
	case ErrorTypeUnknownCommand, ErrorTypeValidation:
		msg = "Command rejected"
	}

	h.logger.Debug(ctx, msg,
		"type", ce.Type,
		"code", ce.Code,
		"command", ce.Command,
		"error", err.Error())
}
