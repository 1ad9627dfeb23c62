package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Normalize.Input)
	assert.Equal(t, "-", cfg.Normalize.Output)
	assert.False(t, cfg.Normalize.SentenceCase)
	assert.Empty(t, cfg.Normalize.Acronyms)
	assert.Empty(t, cfg.Normalize.Titlecase)
	assert.False(t, cfg.Normalize.Gzip)
	assert.Zero(t, cfg.Normalize.CacheSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casenorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
normalize:
  input: corpus.txt
  output: out/corpus.txt
  sentence_case: true
  acronyms: [nasa, ai]
  titlecase:
    - new york
    - london
  cache_size: 128
log:
  level: debug
  format: json
`)
	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "corpus.txt", cfg.Normalize.Input)
	assert.Equal(t, "out/corpus.txt", cfg.Normalize.Output)
	assert.True(t, cfg.Normalize.SentenceCase)
	assert.Equal(t, []string{"nasa", "ai"}, cfg.Normalize.Acronyms)
	assert.Equal(t, []string{"new york", "london"}, cfg.Normalize.Titlecase)
	assert.Equal(t, 128, cfg.Normalize.CacheSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "normalize:\n  acronyms: [nasa]\nlog:\n  level: warn\n")
	t.Setenv("CASENORM_NORMALIZE_ACRONYMS", "gpu,new york")
	t.Setenv("CASENORM_LOG_LEVEL", "error")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"gpu", "new york"}, cfg.Normalize.Acronyms)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CASENORM_NORMALIZE_SENTENCE_CASE", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("sentence-case", false, "")
	flags.StringSlice("acronym", nil, "")
	require.NoError(t, flags.Parse([]string{"--sentence-case", "--acronym", "nasa", "--acronym", "ai"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag(KeySentenceCase, flags.Lookup("sentence-case")))
	require.NoError(t, v.BindPFlag(KeyAcronyms, flags.Lookup("acronym")))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Normalize.SentenceCase)
	assert.Equal(t, []string{"nasa", "ai"}, cfg.Normalize.Acronyms)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "negative cache size",
			body:    "normalize:\n  cache_size: -1\n",
			wantErr: ErrInvalidCacheSize,
		},
		{
			name:    "unknown log format",
			body:    "log:\n  format: xml\n",
			wantErr: ErrInvalidLogFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.SetConfigFile(writeConfig(t, tt.body))
			_, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
