package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/casenorm/internal/infrastructure/config"
	"github.com/eslsoft/casenorm/internal/usecase/corpus"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Service *corpus.Service
}
