package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/version"
)

// NewVersionCommand returns the version command.
func NewVersionCommand() *cobra.Command {
	var (
		format string
		short  bool
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for textutils including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  textutils version                # Show version info
  textutils version --short        # Show short version
  textutils version --format json  # Output as JSON`,
		Args: cobra.NoArgs,
		// Build information does not depend on the configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVersion(cmd.OutOrStdout(), format, short)
		},
	}

	versionCmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&short, "short", false, "Show short version only")

	return versionCmd
}

func writeVersion(w io.Writer, format string, short bool) error {
	switch format {
	case "json":
		info := version.GetBuildInfo()
		out := map[string]interface{}{
			"version":    info.Version,
			"git_commit": info.GitCommit,
			"build_time": info.BuildTime,
			"go_version": info.GoVersion,
			"platform":   info.Platform,
			"is_release": version.IsRelease(),
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	case "text":
		if short {
			_, err := fmt.Fprintln(w, version.GetShortVersion())
			return err
		}
		_, err := fmt.Fprintln(w, version.GetDetailedVersion())
		return err
	default:
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("unsupported format: %s (supported: text, json)", format))
	}
}
