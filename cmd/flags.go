package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/textutils/internal/errors"
)

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		flag = cmd.PersistentFlags().Lookup(flagName)
	}
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateFormatWithSuggestion accepts one of the supported formats,
// case-insensitively, and suggests the nearest one otherwise.
func ValidateFormatWithSuggestion(format string, supported []string) error {
	normalized := strings.ToLower(strings.TrimSpace(format))
	for _, s := range supported {
		if normalized == s {
			return nil
		}
	}

	msg := fmt.Sprintf("invalid format %q, must be one of: %s", format, strings.Join(supported, ", "))
	if similar := errors.SimilarNames(normalized, supported); len(similar) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", similar[0])
	}

	return fmt.Errorf("%s", msg)
}
