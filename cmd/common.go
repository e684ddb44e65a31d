package cmd

import (
	"go.uber.org/zap"

	"droscher.com/RecipeBook/configs"
	"droscher.com/RecipeBook/pkg/repository"
)

const defaultConfigFile = ".RecipeBook.toml"

func cliLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

func openRepository(configFile string, logger *zap.Logger) (*configs.Config, *repository.Repository, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, nil, err
	}

	return conf, repo, nil
}
