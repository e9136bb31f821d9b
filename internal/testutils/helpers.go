// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/textutils/internal/commands"
	"github.com/conneroisu/textutils/internal/registry"
)

// WriteTempFile writes content to name inside a fresh temporary directory
// and returns its path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ChdirTemp switches the working directory to a temporary directory for the
// rest of the test.
func ChdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldDir) })

	return dir
}

// BuiltinRegistry returns a registry populated with the built-in commands.
func BuiltinRegistry(t *testing.T, opts commands.Options) *registry.Registry {
	t.Helper()

	reg := registry.New()
	require.NoError(t, commands.RegisterBuiltins(reg, opts))
	return reg
}
