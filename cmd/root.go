// Package cmd provides the command-line interface for textutils with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --log-level, --locale) - highest priority
//	2. TEXTUTILS_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (TEXTUTILS_SUMMARIZE_LENGTH, etc.)
//	4. Configuration files (.textutils.yml) - lowest priority
//
// Environment Variables:
//
//	TEXTUTILS_CONFIG_FILE: Path to custom configuration file
//	TEXTUTILS_LOG_LEVEL: Override log level
//	TEXTUTILS_TEXT_LOCALE: Locale used for case mapping
//	And the rest following the TEXTUTILS_<SECTION>_<OPTION> pattern
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/textutils/internal/commands"
	"github.com/conneroisu/textutils/internal/config"
	"github.com/conneroisu/textutils/internal/dispatch"
	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/logging"
	"github.com/conneroisu/textutils/internal/registry"
)

// app holds the state shared by the command tree for one invocation.
type app struct {
	v         *viper.Viper
	cfgFile   string
	inputFile string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg        *config.Config
	logger     logging.Logger
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
}

// NewRootCommand builds the textutils command tree reading from in and
// writing results to out and diagnostics to errOut.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		in:     in,
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:   "textutils <command> [text...]",
		Short: "Apply named text transformations",
		Long: `textutils applies a named text transformation to its arguments and prints
the result. The remaining arguments are joined with single spaces.

Quick Start:
  textutils reverse hello          Prints "olleh"
  textutils count a b c            Character, word and line counts
  echo hi | textutils shout -      Read the text from stdin
  textutils --file x.txt snake_case
  textutils list                   List all available commands

Flags for textutils itself go before the command name; everything after the
command name is text.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: a.run,
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewValidationError(errors.ErrCodeValidationFailed, err.Error()).
			WithSuggestions(fmt.Sprintf("run '%s --help' for usage", cmd.CommandPath()))
	})
	rootCmd.Flags().SetInterspersed(false)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .textutils.yml, can also use TEXTUTILS_CONFIG_FILE env var)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("locale", "und", "BCP 47 locale used for case mapping")
	rootCmd.Flags().StringVarP(&a.inputFile, "file", "f", "", "read the text from a file instead of the arguments")

	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("text.locale", flags.Lookup("locale"))

	AddFlagValidation(rootCmd, "log-level", func(level string) error {
		_, err := logging.ParseLevel(level)
		return err
	})

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		if cmd == rootCmd {
			a.writeCatalogue(cmd.OutOrStdout())
		}
	})

	rootCmd.AddCommand(
		NewListCommand(a),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the command line against the process streams.
func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// init loads the configuration and wires the logger, registry and
// dispatcher. It runs once per invocation.
func (a *app) init() error {
	if a.dispatcher != nil {
		return nil
	}

	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return err
	}

	return a.wire(cfg)
}

func (a *app) wire(cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid log level", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Log.Format,
		Output:    a.errOut,
		Component: "textutils",
	})

	ctx := context.Background()
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug(ctx, "Using config file", "path", used)
	}
	for _, w := range cfg.Warnings() {
		logger.Warn(ctx, nil, "Configuration warning",
			"field", w.Field,
			"value", w.Value,
			"message", w.Message,
			"hints", strings.Join(w.Suggestions, "; "))
	}

	reg := registry.New(registry.WithLogger(logger))
	if err := commands.RegisterBuiltins(reg, cfg.BuiltinOptions()); err != nil {
		return err
	}

	listFormat, err := dispatch.ParseFormat(cfg.List.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = reg
	a.dispatcher = dispatch.New(reg, a.out,
		dispatch.WithLogger(logger),
		dispatch.WithListFormat(listFormat),
	)

	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errors.NewValidationError(errors.ErrCodeValidationFailed, "no command given").
			WithSuggestions("run 'textutils list' to see available commands")
	}

	name, text := args[0], args[1:]

	input, err := a.readInput(text)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := a.dispatcher.Dispatch(ctx, name, input); err != nil {
		errors.NewErrorHandler(a.logger).Handle(ctx, err)
		return err
	}

	return nil
}

// writeCatalogue appends the available text commands, grouped by category,
// to the help output.
// Help runs without the pre-run hook, so wiring happens here on demand and
// falls back to the defaults when the configuration is unusable.
func (a *app) writeCatalogue(w io.Writer) {
	if err := a.init(); err != nil {
		if err := a.wire(config.Default()); err != nil {
			return
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text Commands:")
	var b strings.Builder
	if err := dispatch.RenderGrouped(&b, a.registry.List(), commands.Categories); err != nil {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
}
