// Package validation provides input validation for command names and the
// files textutils reads its text from.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxInputSize bounds the size of a file read as command input.
const MaxInputSize = 16 << 20

// ValidateCommandName accepts names made of ASCII letters, digits, dashes
// and underscores.
func ValidateCommandName(name string) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	for _, char := range name {
		if !((char >= 'a' && char <= 'z') ||
			(char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') ||
			char == '-' || char == '_') {
			return fmt.Errorf("command name contains invalid character %q: %s", char, name)
		}
	}

	return nil
}

// ValidateInputFile checks that path names a readable regular file no
// larger than MaxInputSize.
func ValidateInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte")
	}

	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}

	if info.Size() > MaxInputSize {
		return fmt.Errorf("%s is %d bytes, larger than the %d byte limit", path, info.Size(), MaxInputSize)
	}

	return nil
}
