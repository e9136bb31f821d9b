// Package internal contains the core implementation packages for textutils.
//
// # Package Organization
//
//   - registry: name to handler mapping, the single extension point
//   - dispatch: runs a named command, renders the reserved list command
//   - commands: the built-in text transformations and their registration
//   - config: viper-backed configuration with validation
//   - errors: typed command errors, suggestions and exit codes
//   - logging: slog-based structured logging
//   - validation: command name and input file checks
//   - version: build information
//   - testutils: helpers shared by the package tests
//
// # Flow
//
// The cmd package loads the configuration, registers the built-ins into a
// Registry and hands the first argument to the Dispatcher. Adding a command
// means registering one more Entry; the Dispatcher never changes.
package internal
