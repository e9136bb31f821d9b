package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/textutils/internal/dispatch"
)

// NewListCommand returns the list command. It renders the same catalogue as
// dispatching the reserved list name, with an optional format override.
func NewListCommand(a *app) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all available text commands",
		Long: `List every registered text command with its description, sorted by name.

Examples:
  textutils list                  # Table output
  textutils list --format json    # Output as JSON
  textutils list -o yaml          # Output as YAML`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				return a.dispatcher.Dispatch(cmd.Context(), dispatch.ListCommand, "")
			}

			f, err := dispatch.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.dispatcher.WriteList(f)
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "o", "", "Output format (table|json|yaml), defaults to list.format")

	AddFlagValidation(listCmd, "format", func(value string) error {
		return ValidateFormatWithSuggestion(value, dispatch.SupportedFormats)
	})

	return listCmd
}
