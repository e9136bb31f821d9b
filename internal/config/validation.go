package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/conneroisu/textutils/internal/commands"
	"github.com/conneroisu/textutils/internal/dispatch"
	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/logging"
	"github.com/conneroisu/textutils/internal/validation"
)

// ValidationIssue is one problem found in a configuration.
type ValidationIssue struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (vi ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", vi.Field, vi.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var b strings.Builder

	write := func(title string, issues []ValidationIssue) {
		if len(issues) == 0 {
			return
		}
		b.WriteString(title + ":\n")
		for _, issue := range issues {
			b.WriteString("  - " + issue.String() + "\n")
			for _, s := range issue.Suggestions {
				b.WriteString("    hint: " + s + "\n")
			}
		}
	}

	write("Validation errors", vr.Errors)
	write("Validation warnings", vr.Warnings)

	return b.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, msg string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationIssue{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, msg string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationIssue{Field: field, Value: value, Message: msg, Suggestions: suggestions})
}

// Validate checks every section of config and reports all issues.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}

	validateLog(&config.Log, result)
	validateText(&config.Text, result)
	validateSummarize(&config.Summarize, result)
	validateList(&config.List, result)
	validateCommands(&config.Commands, result)

	return result
}

// validateConfig returns the first validation error as a config error.
func validateConfig(config *Config) error {
	return resultError(Validate(config))
}

func resultError(result *ValidationResult) error {
	if !result.HasErrors() {
		return nil
	}

	first := result.Errors[0]
	code := errors.ErrCodeConfigInvalid
	if first.Field == "text.locale" {
		code = errors.ErrCodeConfigLocale
	}

	return errors.NewConfigError(code, "invalid configuration: "+first.String(), nil).
		WithContext("field", first.Field).
		WithSuggestions(first.Suggestions...)
}

func validateLog(config *LogConfig, result *ValidationResult) {
	if _, err := logging.ParseLevel(config.Level); err != nil {
		result.addError("log.level", config.Level, err.Error())
	}

	switch config.Format {
	case "text", "json":
	default:
		result.addError("log.format", config.Format, "unsupported log format "+quote(config.Format),
			"use 'text' or 'json'")
	}
}

func validateText(config *TextConfig, result *ValidationResult) {
	if _, err := language.Parse(config.Locale); err != nil {
		result.addError("text.locale", config.Locale, "invalid BCP 47 locale "+quote(config.Locale),
			"use a tag such as 'en', 'tr' or 'und'")
	}
}

func validateSummarize(config *SummarizeConfig, result *ValidationResult) {
	if config.Length < 0 {
		result.addError("summarize.length", config.Length, fmt.Sprintf("length must be positive, got %d", config.Length))
	}
}

func validateList(config *ListConfig, result *ValidationResult) {
	if _, err := dispatch.ParseFormat(config.Format); err != nil {
		result.addError("list.format", config.Format, "unsupported list format "+quote(config.Format),
			"use one of: "+strings.Join(dispatch.SupportedFormats, ", "))
	}
}

// ReservedNames are taken by the command line itself and cannot be used as
// aliases: the list meta-command and the subcommands with their aliases.
var ReservedNames = []string{dispatch.ListCommand, "ls", "version", "help"}

func isReserved(name string) bool {
	for _, r := range ReservedNames {
		if name == r {
			return true
		}
	}
	return false
}

func validateCommands(config *CommandsConfig, result *ValidationResult) {
	builtin := make(map[string]bool)
	var builtinNames []string
	for _, e := range commands.Builtins(commands.DefaultOptions()) {
		builtin[e.Name] = true
		builtinNames = append(builtinNames, e.Name)
	}

	for _, name := range config.Disabled {
		if err := validation.ValidateCommandName(name); err != nil {
			result.addError("commands.disabled", name, err.Error())
			continue
		}
		if !builtin[name] {
			result.addWarning("commands.disabled", name, "no built-in command named "+quote(name),
				errors.UnknownCommandSuggestions(name, builtinNames)...)
		}
	}

	for alias, target := range config.Aliases {
		if err := validation.ValidateCommandName(alias); err != nil {
			result.addError("commands.aliases", alias, err.Error())
			continue
		}
		if isReserved(alias) {
			result.addError("commands.aliases", alias, quote(alias)+" is reserved",
				"reserved names: "+strings.Join(ReservedNames, ", "))
			continue
		}
		if alias == target {
			result.addError("commands.aliases", alias, "alias cannot point to itself")
			continue
		}
		if err := validation.ValidateCommandName(target); err != nil {
			result.addError("commands.aliases", target, err.Error())
		}
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
