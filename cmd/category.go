package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type CategoryCmd struct {
	Add  CategoryAddCmd  `cmd:"" help:"Add a category"`
	List CategoryListCmd `cmd:"" help:"List categories"`
}

type CategoryAddCmd struct {
	ConfigFile string `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
	Name       string `arg:""                      help:"Category name"`
}

func (c *CategoryAddCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(c.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	category, err := repo.AddCategory(context.Background(), c.Name)
	if err != nil {
		logger.Error("error adding category", zap.String("name", c.Name), zap.Error(err))

		return err
	}

	fmt.Printf("%d\t%s\t%s\n", category.ID, category.Slug, category.Name) //nolint:forbidigo // command output

	return nil
}

type CategoryListCmd struct {
	ConfigFile string `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
}

func (c *CategoryListCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	_, repo, err := openRepository(c.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	categories, err := repo.GetCategories(context.Background())
	if err != nil {
		return err
	}

	for _, category := range categories {
		fmt.Printf("%d\t%s\t%s\n", category.ID, category.Slug, category.Name) //nolint:forbidigo // command output
	}

	return nil
}
