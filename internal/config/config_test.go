package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/testutils"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutils.WriteTempFile(t, "textutils.yml", content)
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "und", cfg.Text.Locale)
	assert.Equal(t, 50, cfg.Summarize.Length)
	assert.Equal(t, "table", cfg.List.Format)
	assert.Empty(t, cfg.Commands.Disabled)
	assert.NotNil(t, cfg.Commands.Aliases)
	assert.Equal(t, language.Und, cfg.LocaleTag())
}

func TestLoadWithoutDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSetupReadsFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
text:
  locale: tr
summarize:
  length: 10
list:
  format: yaml
commands:
  disabled:
    - rot13
  aliases:
    rev: reverse
`)

	v := viper.New()
	require.NoError(t, Setup(v, path))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, language.Turkish, cfg.LocaleTag())
	assert.Equal(t, 10, cfg.Summarize.Length)
	assert.Equal(t, "yaml", cfg.List.Format)
	assert.Equal(t, []string{"rot13"}, cfg.Commands.Disabled)
	assert.Equal(t, map[string]string{"rev": "reverse"}, cfg.Commands.Aliases)

	opts := cfg.BuiltinOptions()
	assert.Equal(t, 10, opts.SummarizeLength)
	assert.Equal(t, []string{"rot13"}, opts.Disabled)
	assert.Equal(t, "reverse", opts.Aliases["rev"])
}

func TestSetupConfigFileFromEnv(t *testing.T) {
	path := writeConfig(t, "summarize:\n  length: 7\n")
	t.Setenv(ConfigFileEnv, path)

	v := viper.New()
	require.NoError(t, Setup(v, ""))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Summarize.Length)
}

func TestSetupFlagBeatsEnvFile(t *testing.T) {
	envPath := writeConfig(t, "summarize:\n  length: 7\n")
	flagPath := writeConfig(t, "summarize:\n  length: 9\n")
	t.Setenv(ConfigFileEnv, envPath)

	v := viper.New()
	require.NoError(t, Setup(v, flagPath))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Summarize.Length)
}

func TestSetupEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "summarize:\n  length: 7\ntext:\n  locale: en\n")
	t.Setenv("TEXTUTILS_SUMMARIZE_LENGTH", "12")
	t.Setenv("TEXTUTILS_TEXT_LOCALE", "tr")

	v := viper.New()
	require.NoError(t, Setup(v, path))

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Summarize.Length)
	assert.Equal(t, "tr", cfg.Text.Locale)
}

func TestSetupMissingDefaultFileIsFine(t *testing.T) {
	testutils.ChdirTemp(t)
	t.Setenv(ConfigFileEnv, "")

	v := viper.New()
	require.NoError(t, Setup(v, ""))
}

func TestSetupMissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := Setup(v, filepath.Join(t.TempDir(), "missing.yml"))

	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
}

func TestSetupMalformedFile(t *testing.T) {
	path := writeConfig(t, "log: [unclosed\n")

	err := Setup(viper.New(), path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		field string
	}{
		{"bad log level", "log.level", "loud", "log.level"},
		{"bad log format", "log.format", "xml", "log.format"},
		{"bad locale", "text.locale", "not a locale!", "text.locale"},
		{"negative summarize", "summarize.length", -1, "summarize.length"},
		{"bad list format", "list.format", "csv", "list.format"},
		{"undecodable length", "summarize.length", "many", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			cfg, err := LoadFrom(v)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.IsConfigError(err))

			if tt.field != "" {
				var ce *errors.CommandError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.field, ce.Context["field"])
			}
		})
	}
}

func TestLoadInvalidLocaleCode(t *testing.T) {
	v := viper.New()
	v.Set("text.locale", "??")

	_, err := LoadFrom(v)
	var ce *errors.CommandError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errors.ErrCodeConfigLocale, ce.Code)
}

func TestLoadUsesGlobalViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("summarize.length", 3)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Summarize.Length)
}

func TestLoadKeepsWarnings(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("commands.disabled", []string{"revers"})

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "commands.disabled", warnings[0].Field)
	assert.Contains(t, warnings[0].Suggestions, "did you mean 'reverse'?")
}
