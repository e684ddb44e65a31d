package cmd

import (
	"context"

	"go.uber.org/zap"
)

type MigrateCmd struct {
	ConfigFile string `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(m.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Migrate(context.Background()); err != nil {
		logger.Error("error migrating database", zap.Error(err))

		return err
	}

	logger.Info("database schema is up to date")

	return nil
}
