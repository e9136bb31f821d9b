//go:build property
// +build property

package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/conneroisu/textutils/internal/validation"
)

func TestConfigurationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(2468)
	properties := gopter.NewProperties(parameters)

	// Property: any positive summarize length with a well-formed alias validates
	properties.Property("valid config validates", prop.ForAll(
		func(length int, alias string) bool {
			cfg := Default()
			cfg.Summarize.Length = length
			if !isReserved(alias) && alias != "reverse" {
				cfg.Commands.Aliases[alias] = "reverse"
			}
			return validateConfig(cfg) == nil
		},
		gen.IntRange(1, 10000),
		gen.RegexMatch(`^[a-zA-Z0-9_-]{1,16}$`),
	))

	// Property: negative lengths are always rejected
	properties.Property("negative summarize length rejected", prop.ForAll(
		func(length int) bool {
			cfg := Default()
			cfg.Summarize.Length = length
			return validateConfig(cfg) != nil
		},
		gen.IntRange(-10000, -1),
	))

	// Property: an alias containing a character outside the allowed alphabet
	// always fails validation
	properties.Property("invalid alias names rejected", prop.ForAll(
		func(prefix, bad string) bool {
			cfg := Default()
			cfg.Commands.Aliases[prefix+bad] = "reverse"
			return validateConfig(cfg) != nil
		},
		gen.AlphaString(),
		gen.OneConstOf(" ", ".", "/", ";", "!", "\t"),
	))

	// Property: validation is deterministic
	properties.Property("validation consistency", prop.ForAll(
		func(name string) bool {
			first := validation.ValidateCommandName(name) == nil
			second := validation.ValidateCommandName(name) == nil
			return first == second
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
