package cmd

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/integrations"
	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/repository"
	"droscher.com/RecipeBook/pkg/slug"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type ImportCmd struct {
	ConfigFile  string `default:".RecipeBook.toml"  help:"Path to config file"                short:"c"`
	URL         string `help:"Page holding the recipe" required:""`
	Author      string `help:"Email of the user who will own the recipe" required:""`
	Integration string `default:"schema_org"         help:"Integration used to read the page"`
}

func (i *ImportCmd) Run(cliCtx *Context) error {
	logger := cliLogger(cliCtx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	integration := integrations.GetIntegration(i.Integration, logger)
	if integration == nil {
		return fmt.Errorf("%w: %s", ErrUnknownIntegration, i.Integration)
	}

	_, repo, err := openRepository(i.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	recipe, err := integration.FindRecipe(i.URL)
	if err != nil {
		logger.Error("error reading recipe", zap.String("url", i.URL), zap.Error(err))

		return err
	}

	created, err := importRecipe(context.Background(), repo, recipe, i.Author, logger)
	if err != nil {
		return err
	}

	fmt.Printf("/recipes/%s/\n", created.Slug) //nolint:forbidigo // command output

	return nil
}

// importRecipe stores a scraped recipe for author. Scraped categories are
// linked only when a category with the same slug already exists.
func importRecipe(ctx context.Context, repo *repository.Repository, recipe *model.Recipe, author string, logger *zap.Logger) (*model.Recipe, error) {
	user, err := repo.GetUserFromEmail(ctx, author)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uint, 0, len(recipe.Categories))

	for _, scraped := range recipe.Categories {
		category, err := repo.GetCategoryBySlug(ctx, slug.Make(scraped.Name, "category"))
		if errors.Is(err, repository.ErrCategoryNotFound) {
			logger.Warn("skipping unknown category", zap.String("name", scraped.Name))

			continue
		}

		if err != nil {
			return nil, err
		}

		categoryIDs = append(categoryIDs, category.ID)
	}

	ingredients := recipe.Ingredients
	recipe.Ingredients = nil
	recipe.Categories = nil
	recipe.AuthorID = user.ID

	created, err := repo.CreateRecipe(ctx, recipe, categoryIDs)
	if err != nil {
		return nil, err
	}

	for _, ingredient := range ingredients {
		if _, err := repo.AddIngredient(ctx, created.ID, ingredient.Name, ingredient.Quantity); err != nil {
			return nil, err
		}
	}

	logger.Info("imported recipe",
		zap.String("slug", created.Slug),
		zap.Int("ingredients", len(ingredients)),
		zap.Int("categories", len(categoryIDs)))

	return created, nil
}
