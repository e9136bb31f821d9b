// Package commands provides the built-in text commands and the start-up
// function that registers them.
//
// Each handler is a pure string transformation. RegisterBuiltins is called
// once before the first dispatch; nothing registers itself at import time.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/registry"
)

// Command categories used for grouping in listings.
const (
	CategoryStatistics = "Statistics"
	CategoryTransform  = "Transform"
	CategoryNaming     = "Naming"
	CategoryEditing    = "Editing"
	CategoryEncoding   = "Encoding"
)

// Categories lists the built-in categories in display order.
var Categories = []string{CategoryStatistics, CategoryTransform, CategoryNaming, CategoryEditing, CategoryEncoding}

// Options tune the built-in commands.
type Options struct {
	// Locale drives case mapping for shout, whisper and the naming commands.
	Locale language.Tag
	// SummarizeLength is the number of characters kept by summarize.
	SummarizeLength int
	// Disabled names are not registered.
	Disabled []string
	// Aliases maps an extra name to an already registered command.
	Aliases map[string]string
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Locale:          language.Und,
		SummarizeLength: DefaultSummarizeLength,
	}
}

// Builtins returns the built-in command entries for opts, sorted by name.
func Builtins(opts Options) []registry.Entry {
	tag := opts.Locale
	f := registry.Func

	entries := []registry.Entry{
		{Name: "count", Description: "Count characters, words and lines", Category: CategoryStatistics, Handler: f(Count)},
		{Name: "length", Description: "Count characters", Category: CategoryStatistics, Handler: f(Length)},
		{Name: "words", Description: "Count words", Category: CategoryStatistics, Handler: f(Words)},
		{Name: "lines", Description: "Count lines", Category: CategoryStatistics, Handler: f(Lines)},

		{Name: "reverse", Description: "Reverse the text", Category: CategoryTransform, Handler: f(Reverse)},
		{Name: "shout", Description: "Convert the text to UPPERCASE", Category: CategoryTransform, Handler: f(Upper(tag))},
		{Name: "whisper", Description: "Convert the text to lowercase", Category: CategoryTransform, Handler: f(Lower(tag))},
		{Name: "capitalize", Description: "Uppercase the first letter of every word", Category: CategoryTransform, Handler: f(Capitalize)},
		{Name: "strip", Description: "Trim leading and trailing whitespace", Category: CategoryTransform, Handler: f(Strip)},

		{Name: "snake_case", Description: "Convert to snake_case", Category: CategoryNaming, Handler: f(SnakeCase(tag))},
		{Name: "kebab_case", Description: "Convert to kebab-case", Category: CategoryNaming, Handler: f(KebabCase(tag))},
		{Name: "camel_case", Description: "Convert to camelCase", Category: CategoryNaming, Handler: f(CamelCase(tag))},
		{Name: "pascal_case", Description: "Convert to PascalCase", Category: CategoryNaming, Handler: f(PascalCase(tag))},

		{Name: "summarize", Description: fmt.Sprintf("Keep the first %d characters", summarizeLength(opts)), Category: CategoryEditing, Handler: f(Summarize(summarizeLength(opts)))},
		{Name: "compact", Description: "Collapse runs of whitespace to one space", Category: CategoryEditing, Handler: f(Compact)},
		{Name: "remove_vowels", Description: "Remove all vowels", Category: CategoryEditing, Handler: f(RemoveVowels)},
		{Name: "only_vowels", Description: "Keep only the vowels", Category: CategoryEditing, Handler: f(OnlyVowels)},
		{Name: "untag", Description: "Strip HTML markup and keep the text", Category: CategoryEditing, Handler: Untag},

		{Name: "rot13", Description: "Apply the ROT13 cipher", Category: CategoryEncoding, Handler: f(Rot13)},
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func summarizeLength(opts Options) int {
	if opts.SummarizeLength <= 0 {
		return DefaultSummarizeLength
	}
	return opts.SummarizeLength
}

// RegisterBuiltins registers every enabled built-in command into reg, then
// the configured aliases. An alias whose target is not registered is a
// configuration error.
func RegisterBuiltins(reg *registry.Registry, opts Options) error {
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	for _, e := range Builtins(opts) {
		if disabled[e.Name] {
			continue
		}
		reg.RegisterEntry(e)
	}

	return RegisterAliases(reg, opts.Aliases)
}

// RegisterAliases adds one entry per alias sharing its target's handler.
//
// An alias may point to another alias; targets are registered before the
// aliases that use them, with ties broken by name. An alias whose target
// never becomes available, including one that is part of a cycle, is a
// configuration error.
func RegisterAliases(reg *registry.Registry, aliases map[string]string) error {
	pending := make([]string, 0, len(aliases))
	for alias := range aliases {
		pending = append(pending, alias)
	}
	sort.Strings(pending)

	for len(pending) > 0 {
		waiting := make(map[string]bool, len(pending))
		for _, alias := range pending {
			waiting[alias] = true
		}

		var next []string
		for _, alias := range pending {
			target := aliases[alias]
			if waiting[target] && target != alias {
				next = append(next, alias)
				continue
			}

			e, err := reg.Get(target)
			if err != nil {
				return errors.NewConfigError(errors.ErrCodeConfigInvalid,
					fmt.Sprintf("alias %q points to unknown command %q", alias, target), nil)
			}

			reg.RegisterEntry(registry.Entry{
				Name:        alias,
				Description: "Alias for " + target,
				Category:    e.Category,
				Handler:     e.Handler,
			})
		}

		if len(next) == len(pending) {
			alias := next[0]
			return errors.NewConfigError(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("alias %q is part of an alias cycle", alias), nil).
				WithContext("aliases", strings.Join(next, ", "))
		}
		pending = next
	}

	return nil
}
