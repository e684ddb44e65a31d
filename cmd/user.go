package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type UserCmd struct {
	Add UserAddCmd `cmd:"" help:"Add a user"`
}

type UserAddCmd struct {
	ConfigFile string `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
	Username   string `arg:""                      help:"Login name"`
	Email      string `arg:""                      help:"Email address carried in the user's tokens"`
	FirstName  string `help:"First name"`
	LastName   string `help:"Last name"`
}

func (u *UserAddCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(u.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	user, err := repo.AddUser(context.Background(), u.Username, u.Email, u.FirstName, u.LastName)
	if err != nil {
		logger.Error("error adding user", zap.String("username", u.Username), zap.Error(err))

		return err
	}

	fmt.Printf("%d\t%s\t%s\n", user.ID, user.UUID, user.Username) //nolint:forbidigo // command output

	return nil
}
