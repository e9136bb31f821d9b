// Package registry holds the set of commands known to the CLI.
//
// A Registry maps a case-sensitive command name to an Entry carrying the
// handler and a human-readable description. It is populated once during
// start-up and only read afterwards, so it carries no lock: concurrent
// lookups are safe once registration has finished, concurrent registration
// is not supported.
//
// Registering a name twice replaces the earlier entry. This is intended and
// never reported as an error.
package registry

import (
	"context"
	"sort"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/logging"
)

// DefaultDescription is used for entries registered without a description.
const DefaultDescription = "No description"

// Handler transforms the input text of a command into its output.
type Handler func(input string) (string, error)

// Func adapts a plain string transformation to a Handler.
func Func(f func(string) string) Handler {
	return func(input string) (string, error) {
		return f(input), nil
	}
}

// Entry describes a registered command.
type Entry struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category,omitempty" yaml:"category,omitempty"`
	Handler     Handler `json:"-" yaml:"-"`
}

// EventType represents the outcome of a registration
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeReplaced
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeAdded:
		return "added"
	case EventTypeReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Registry maps command names to entries.
type Registry struct {
	entries map[string]Entry
	logger  logging.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger attaches a logger that records registrations at debug level.
func WithLogger(logger logging.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger.WithComponent("registry")
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Entry),
		logger:  logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces the entry for name.
func (r *Registry) Register(name, description string, handler Handler) {
	r.RegisterEntry(Entry{Name: name, Description: description, Handler: handler})
}

// RegisterFunc registers a plain string transformation.
func (r *Registry) RegisterFunc(name, description string, f func(string) string) {
	r.Register(name, description, Func(f))
}

// RegisterEntry adds or replaces e, keyed by e.Name.
func (r *Registry) RegisterEntry(e Entry) {
	if e.Description == "" {
		e.Description = DefaultDescription
	}

	event := EventTypeAdded
	if _, exists := r.entries[e.Name]; exists {
		event = EventTypeReplaced
	}

	r.entries[e.Name] = e

	r.logger.Debug(context.Background(), "Command registered",
		"command", e.Name,
		"event", event.String())
}

// Get returns the entry registered under name, or an unknown command error.
func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, errors.NewUnknownCommandError(name)
	}
	return e, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// List returns all entries sorted by name.
func (r *Registry) List() []Entry {
	result := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns all registered names in List order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.entries)
}
