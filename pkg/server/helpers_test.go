package server_test

import (
	"fmt"

	"droscher.com/RecipeBook/pkg/media"
	"droscher.com/RecipeBook/pkg/repository"
)

func repositoryNotFound() error {
	return fmt.Errorf("%w: missing", repository.ErrRecipeNotFound)
}

func categoryNotFound() error {
	return fmt.Errorf("%w: desserts", repository.ErrCategoryNotFound)
}

func slugConflict() error {
	return fmt.Errorf("%w: tomato-soup", repository.ErrSlugConflict)
}

func mediaNotFound() error {
	return fmt.Errorf("%w: recipe_pics/gone.png", media.ErrNotFound)
}
