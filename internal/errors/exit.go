package errors

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps an error returned by the CLI to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ce *CommandError
	if errors.As(err, &ce) {
		switch ce.Type {
		case ErrorTypeConfig, ErrorTypeIO, ErrorTypeValidation:
			return ExitUsage
		}
	}

	return ExitFailure
}

// Print writes a user-facing rendering of err, followed by any suggestions.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}

	var ce *CommandError
	if !errors.As(err, &ce) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	msg := ce.Message
	if ce.Command != "" && ce.Type == ErrorTypeHandlerFailure {
		msg = fmt.Sprintf("command %q failed", ce.Command)
	}
	if ce.Cause != nil {
		msg += ": " + ce.Cause.Error()
	}
	fmt.Fprintf(w, "Error: %s\n", msg)

	for _, s := range ce.Suggestions {
		fmt.Fprintf(w, "  hint: %s\n", s)
	}
}
