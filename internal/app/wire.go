//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/eslsoft/casenorm/internal/infrastructure/config"
	"github.com/eslsoft/casenorm/internal/infrastructure/logging"
)

var configSet = wire.NewSet(
	config.Load,
)

var loggingSet = wire.NewSet(
	logging.NewLogger,
)

var usecaseSet = wire.NewSet(
	NewNormalizationConfig,
	NewLineNormalizer,
	NewCorpusService,
)

// Initialize builds the application container using Wire.
func Initialize(v *viper.Viper) (*Container, error) {
	wire.Build(
		configSet,
		loggingSet,
		usecaseSet,
		wire.Struct(new(Container), "Config", "Logger", "Service"),
	)
	return nil, nil
}
