// Package dispatch routes a command invocation to its registered handler.
//
// The Dispatcher is the only place that knows about the reserved "list"
// meta-command; every other name is resolved through the Registry. Adding a
// command never requires changes here.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/logging"
	"github.com/conneroisu/textutils/internal/registry"
)

// ListCommand is the reserved meta-command that enumerates the registry.
const ListCommand = "list"

// Dispatcher resolves command names against a Registry and invokes them.
type Dispatcher struct {
	registry   *registry.Registry
	out        io.Writer
	logger     logging.Logger
	listFormat Format
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger.WithComponent("dispatch")
		}
	}
}

// WithListFormat sets the format used by the list meta-command.
func WithListFormat(format Format) Option {
	return func(d *Dispatcher) {
		d.listFormat = format
	}
}

// New creates a Dispatcher that writes results to out.
func New(reg *registry.Registry, out io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:   reg,
		out:        out,
		logger:     logging.NopLogger{},
		listFormat: FormatTable,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs the named command with argument and writes its result.
//
// The name "list" writes the registry listing instead. Unknown names yield
// an unknown command error carrying suggestions; handler errors and panics
// yield a handler failure naming the command.
func (d *Dispatcher) Dispatch(ctx context.Context, name, argument string) error {
	if name == ListCommand {
		return d.WriteList(d.listFormat)
	}

	result, err := d.Run(ctx, name, argument)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(d.out, result); err != nil {
		return errors.NewIOError(errors.ErrCodeOutputWrite, "failed to write result", err).
			WithCommand(name)
	}

	return nil
}

// Run resolves name and returns the handler's result without writing it.
// For "list" it returns the rendered listing.
func (d *Dispatcher) Run(ctx context.Context, name, argument string) (string, error) {
	if name == ListCommand {
		var b strings.Builder
		if err := RenderList(&b, d.registry.List(), d.listFormat); err != nil {
			return "", errors.NewInternalError(errors.ErrCodeInternalError, "failed to render command list", err)
		}
		return strings.TrimSuffix(b.String(), "\n"), nil
	}

	logger := d.logger.With("command", name)

	entry, err := d.registry.Get(name)
	if err != nil {
		if errors.IsUnknownCommand(err) {
			ce := errors.NewUnknownCommandError(name).
				WithSuggestions(errors.UnknownCommandSuggestions(name, d.registry.Names())...)
			logger.Debug(ctx, "Unknown command")
			return "", ce
		}
		return "", err
	}

	perf := logging.StartOperation(logger, name)
	result, err := invoke(name, entry.Handler, argument)
	if err != nil {
		perf.EndWithError(ctx, err)
		return "", err
	}
	perf.End(ctx)

	return result, nil
}

// List returns the registry entries in listing order.
func (d *Dispatcher) List() []registry.Entry {
	return d.registry.List()
}

// invoke calls h, converting both returned errors and panics into handler
// failures.
func invoke(name string, h registry.Handler, argument string) (result string, err error) {
	if h == nil {
		return "", errors.NewHandlerFailure(name, fmt.Errorf("no handler registered"))
	}

	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = errors.NewHandlerPanic(name, r)
		}
	}()

	result, err = h(argument)
	if err != nil {
		return "", errors.NewHandlerFailure(name, err)
	}

	return result, nil
}
