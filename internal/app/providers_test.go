package app

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/casenorm/internal/infrastructure/config"
	"github.com/eslsoft/casenorm/internal/usecase/casing"
)

func TestNewLineNormalizer(t *testing.T) {
	cfg := &config.Config{Normalize: config.NormalizeConfig{Acronyms: []string{"nasa"}}}
	rules := NewNormalizationConfig(cfg)
	logger, _ := test.NewNullLogger()

	plain, err := NewLineNormalizer(cfg, rules, logger)
	require.NoError(t, err)
	assert.IsType(t, &casing.Normalizer{}, plain)

	cfg.Normalize.CacheSize = 16
	memo, err := NewLineNormalizer(cfg, rules, logger)
	require.NoError(t, err)
	assert.IsType(t, &casing.MemoizedNormalizer{}, memo)
	assert.Equal(t, "NASA rocks", memo.Normalize("nasa ROCKS"))
}

func TestNewLineNormalizer_LogsWhenOnlyLowercasing(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	empty := &config.Config{}
	_, err := NewLineNormalizer(empty, NewNormalizationConfig(empty), logger)
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	hook.Reset()
	withRules := &config.Config{Normalize: config.NormalizeConfig{SentenceCase: true}}
	_, err = NewLineNormalizer(withRules, NewNormalizationConfig(withRules), logger)
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestInitialize(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyTitlecase, []string{"london"})
	v.Set(config.KeyLogLevel, "debug")

	container, err := Initialize(v)
	require.NoError(t, err)
	require.NotNil(t, container.Service)
	assert.Equal(t, "debug", container.Logger.GetLevel().String())
	assert.Equal(t, []string{"london"}, container.Config.Normalize.Titlecase)
}

func TestInitialize_InvalidLogLevel(t *testing.T) {
	v := viper.New()
	v.Set(config.KeyLogLevel, "chatty")

	_, err := Initialize(v)
	assert.Error(t, err)
}
