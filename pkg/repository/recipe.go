package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/slug"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrSlugConflict   = errors.New("slug already in use")
)

const recipeSlugFallback = "recipe"

// reservedRecipeSlugs collide with fixed routes under /recipes/.
var reservedRecipeSlugs = map[string]struct{}{"create": {}}

type RecipeRepository interface { //nolint:interfacebloat // one method per listing the site offers
	CreateRecipe(ctx context.Context, recipe *model.Recipe, categoryIDs []uint) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *model.Recipe, categoryIDs []uint) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipeBySlug(ctx context.Context, recipeSlug string) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error)
	MostLikedRecipes(ctx context.Context, limit int) ([]*model.RecipeSummary, error)
	RecentRecipes(ctx context.Context, limit int) ([]*model.Recipe, error)
	GetRecipesByAuthor(ctx context.Context, authorID uint) ([]*model.Recipe, error)
	GetRecipesInCategory(ctx context.Context, categoryID uint) ([]*model.Recipe, error)
}

// CreateRecipe assigns the recipe a unique slug derived from its title and
// stores it together with its category links.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *model.Recipe, categoryIDs []uint) (*model.Recipe, error) {
	recipeSlug, err := slug.Unique(ctx, slug.Make(recipe.Title, recipeSlugFallback), r.recipeSlugExists)
	if err != nil {
		return nil, err
	}

	recipe.Slug = recipeSlug
	if recipe.DatePosted.IsZero() {
		recipe.DatePosted = time.Now().UTC()
	}

	if recipe.Image == "" {
		recipe.Image = model.DefaultImage
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(recipe); result.Error != nil {
			return result.Error
		}

		return linkCategories(tx, recipe.ID, categoryIDs)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrSlugConflict, recipe.Slug)
		}

		return nil, err
	}

	return recipe, nil
}

func (r *Repository) recipeSlugExists(ctx context.Context, candidate string) (bool, error) {
	if _, reserved := reservedRecipeSlugs[candidate]; reserved {
		return true, nil
	}

	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("slug = ?", candidate).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// UpdateRecipe writes the editable fields and replaces the category links.
// Slug and author are never touched.
func (r *Repository) UpdateRecipe(ctx context.Context, recipe *model.Recipe, categoryIDs []uint) (*model.Recipe, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Recipe{ID: recipe.ID}).
			Select("image", "title", "description", "content", "difficulty", "portions", "cooking_time").
			Updates(recipe)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", ErrRecipeNotFound, recipe.ID)
		}

		if result := tx.Where("recipe_id = ?", recipe.ID).Delete(&model.RecipeCategory{}); result.Error != nil {
			return result.Error
		}

		return linkCategories(tx, recipe.ID, categoryIDs)
	})
	if err != nil {
		return nil, err
	}

	return r.GetRecipeByID(ctx, recipe.ID)
}

func linkCategories(tx *gorm.DB, recipeID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]model.RecipeCategory, 0, len(categoryIDs))
	seen := make(map[uint]struct{}, len(categoryIDs))

	for _, categoryID := range categoryIDs {
		if _, found := seen[categoryID]; found {
			continue
		}

		seen[categoryID] = struct{}{}
		links = append(links, model.RecipeCategory{RecipeID: recipeID, CategoryID: categoryID})
	}

	return tx.Create(&links).Error
}

// DeleteRecipe removes the recipe with its ingredients, likes and category
// links.
func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&model.Ingredient{}, &model.RecipeLike{}, &model.RecipeCategory{}} {
			if result := tx.Where("recipe_id = ?", recipeID).Delete(dependent); result.Error != nil {
				return result.Error
			}
		}

		result := tx.Delete(&model.Recipe{}, recipeID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", ErrRecipeNotFound, recipeID)
		}

		return nil
	})
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.recipeWithRelations(ctx).First(&recipe, recipeID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrRecipeNotFound, recipeID)
		}

		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) GetRecipeBySlug(ctx context.Context, recipeSlug string) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.recipeWithRelations(ctx).Where("slug = ?", recipeSlug).First(&recipe)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, recipeSlug)
		}

		return nil, result.Error
	}

	return &recipe, nil
}

func (r *Repository) recipeWithRelations(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("categories.name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id ASC") })
}

func (r *Repository) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	if result := r.DB.WithContext(ctx).Order("date_posted DESC").Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

// SearchRecipes matches query as a case-insensitive substring of the title.
// An empty query returns every recipe.
func (r *Repository) SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	db := r.DB.WithContext(ctx)
	if query != "" {
		db = db.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(query)+"%")
	}

	if result := db.Find(&recipes); result.Error != nil {
		r.Logger.Error("error searching recipes", zap.String("query", query), zap.Error(result.Error))

		return nil, result.Error
	}

	return recipes, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func (r *Repository) MostLikedRecipes(ctx context.Context, limit int) ([]*model.RecipeSummary, error) {
	var summaries []*model.RecipeSummary

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Select("recipes.id, recipes.title, recipes.slug, recipes.image, recipes.description, " +
			"recipes.date_posted, recipes.author_id, recipes.difficulty, " +
			"COUNT(recipe_likes.user_id) AS like_count").
		Joins("LEFT JOIN recipe_likes ON recipe_likes.recipe_id = recipes.id").
		Group("recipes.id").
		Order("like_count DESC, recipes.date_posted DESC").
		Limit(limit).
		Scan(&summaries)
	if result.Error != nil {
		return nil, result.Error
	}

	return summaries, nil
}

func (r *Repository) RecentRecipes(ctx context.Context, limit int) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	if result := r.DB.WithContext(ctx).Order("date_posted DESC").Limit(limit).Find(&recipes); result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) GetRecipesByAuthor(ctx context.Context, authorID uint) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	result := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order("date_posted DESC").Find(&recipes)
	if result.Error != nil {
		r.Logger.Error("error getting recipes for author", zap.Uint("author_id", authorID), zap.Error(result.Error))

		return nil, result.Error
	}

	return recipes, nil
}

func (r *Repository) GetRecipesInCategory(ctx context.Context, categoryID uint) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	result := r.DB.WithContext(ctx).
		Joins("INNER JOIN recipe_categories ON recipe_categories.recipe_id = recipes.id").
		Where("recipe_categories.category_id = ?", categoryID).
		Find(&recipes)
	if result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}
