package app

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/eslsoft/casenorm/internal/entity"
	"github.com/eslsoft/casenorm/internal/infrastructure/config"
	"github.com/eslsoft/casenorm/internal/usecase/casing"
	"github.com/eslsoft/casenorm/internal/usecase/corpus"
)

const instrumentationName = "github.com/eslsoft/casenorm"

// NewNormalizationConfig builds the casing rules from loaded configuration.
func NewNormalizationConfig(cfg *config.Config) entity.NormalizationConfig {
	return entity.NewNormalizationConfig(
		cfg.Normalize.Acronyms,
		cfg.Normalize.Titlecase,
		cfg.Normalize.SentenceCase,
	)
}

// NewLineNormalizer returns the casing normalizer, memoized when a cache size is set.
func NewLineNormalizer(cfg *config.Config, rules entity.NormalizationConfig, logger *logrus.Logger) (casing.LineNormalizer, error) {
	if rules.IsNoop() {
		logger.Debug("no casing rules configured, lines are only lowercased")
	}
	normalizer := casing.NewNormalizer(rules)
	if cfg.Normalize.CacheSize == 0 {
		return normalizer, nil
	}
	memo, err := casing.NewMemoizedNormalizer(normalizer, cfg.Normalize.CacheSize)
	if err != nil {
		return nil, err
	}
	return memo, nil
}

// NewCorpusService wires the stream driver to the logger and the global meter provider.
func NewCorpusService(normalizer casing.LineNormalizer, logger *logrus.Logger) (*corpus.Service, error) {
	return corpus.NewService(
		normalizer,
		corpus.WithLogger(logger),
		corpus.WithMeter(otel.Meter(instrumentationName)),
	)
}
