// Package config provides configuration management for textutils using
// Viper for loading from files, environment variables and command-line
// flags.
//
// Sources, highest priority first:
//  1. command-line flags bound to keys (--log-level, --locale, ...)
//  2. TEXTUTILS_<SECTION>_<OPTION> environment variables
//  3. the config file: --config, TEXTUTILS_CONFIG_FILE, or .textutils.yml
//  4. defaults
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/conneroisu/textutils/internal/commands"
	"github.com/conneroisu/textutils/internal/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TEXTUTILS"

// ConfigFileEnv names the environment variable holding a config file path.
const ConfigFileEnv = "TEXTUTILS_CONFIG_FILE"

type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Text      TextConfig      `mapstructure:"text" yaml:"text"`
	Summarize SummarizeConfig `mapstructure:"summarize" yaml:"summarize"`
	List      ListConfig      `mapstructure:"list" yaml:"list"`
	Commands  CommandsConfig  `mapstructure:"commands" yaml:"commands"`

	warnings []ValidationIssue
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type TextConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale"`
}

type SummarizeConfig struct {
	Length int `mapstructure:"length" yaml:"length"`
}

type ListConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

type CommandsConfig struct {
	Disabled []string          `mapstructure:"disabled" yaml:"disabled"`
	Aliases  map[string]string `mapstructure:"aliases" yaml:"aliases"`
}

// SetDefaults registers default values on v. Keys need a default for
// AutomaticEnv to pick up their environment variables.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("text.locale", "und")
	v.SetDefault("summarize.length", commands.DefaultSummarizeLength)
	v.SetDefault("list.format", "table")
	v.SetDefault("commands.disabled", []string{})
	v.SetDefault("commands.aliases", map[string]string{})
}

// Setup points v at its config file and environment.
//
// The file is cfgFile when set, else $TEXTUTILS_CONFIG_FILE, else
// .textutils.yml in the working directory. A missing default file is not an
// error; a missing or malformed explicit file is.
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	explicit := true
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(ConfigFileEnv); envConfigFile != "" {
		v.SetConfigFile(envConfigFile)
	} else {
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".textutils")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && !explicit {
			return nil
		}
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to read config file", err)
	}

	return nil
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v. Validation
// errors fail the load; warnings are kept on the returned Config.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to decode configuration", err)
	}

	applyDefaults(&config)

	result := Validate(&config)
	if err := resultError(result); err != nil {
		return nil, err
	}
	config.warnings = result.Warnings

	return &config, nil
}

// Warnings returns the non-fatal validation issues found while loading.
func (c *Config) Warnings() []ValidationIssue {
	return c.warnings
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

func applyDefaults(config *Config) {
	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Text.Locale == "" {
		config.Text.Locale = "und"
	}
	if config.Summarize.Length == 0 {
		config.Summarize.Length = commands.DefaultSummarizeLength
	}
	if config.List.Format == "" {
		config.List.Format = "table"
	}
	if config.Commands.Aliases == nil {
		config.Commands.Aliases = make(map[string]string)
	}
}

// LocaleTag returns the parsed text locale, falling back to the root locale.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Text.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// BuiltinOptions converts the configuration into options for the built-in
// commands.
func (c *Config) BuiltinOptions() commands.Options {
	aliases := make(map[string]string, len(c.Commands.Aliases))
	for alias, target := range c.Commands.Aliases {
		aliases[alias] = target
	}

	return commands.Options{
		Locale:          c.LocaleTag(),
		SummarizeLength: c.Summarize.Length,
		Disabled:        append([]string(nil), c.Commands.Disabled...),
		Aliases:         aliases,
	}
}
