package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/auth"
)

type TokenCmd struct {
	ConfigFile string        `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
	Email      string        `arg:""                      help:"Email of an existing user"`
	TTL        time.Duration `default:"24h"               help:"Token lifetime"`
}

func (t *TokenCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(t.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if _, err := repo.GetUserFromEmail(context.Background(), t.Email); err != nil {
		logger.Error("error finding user", zap.String("email", t.Email), zap.Error(err))

		return err
	}

	token, err := auth.NewAuthManager(conf, repo, logger).IssueToken(t.Email, t.TTL)
	if err != nil {
		return err
	}

	fmt.Println(token) //nolint:forbidigo // command output

	return nil
}
