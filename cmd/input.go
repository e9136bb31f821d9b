package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/validation"
)

// stdinArg as the only text argument reads the text from stdin.
const stdinArg = "-"

// readInput resolves the text a command operates on: the --file contents, stdin
// when the only argument is "-", or the arguments joined by single spaces.
// One trailing newline is dropped from file and stdin input.
func (a *app) readInput(args []string) (string, error) {
	if a.inputFile != "" {
		if len(args) > 0 {
			return "", errors.NewValidationError(errors.ErrCodeValidationFailed,
				"cannot combine --file with text arguments")
		}

		if err := validation.ValidateInputFile(a.inputFile); err != nil {
			return "", errors.NewIOError(errors.ErrCodeInputRead, "invalid input file", err).
				WithContext("path", a.inputFile)
		}

		data, err := os.ReadFile(a.inputFile)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeInputRead, "failed to read input file", err).
				WithContext("path", a.inputFile)
		}
		return trimNewline(string(data)), nil
	}

	if len(args) == 1 && args[0] == stdinArg {
		data, err := io.ReadAll(a.in)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeInputRead, "failed to read stdin", err)
		}
		return trimNewline(string(data)), nil
	}

	return strings.Join(args, " "), nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
