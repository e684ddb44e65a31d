package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/RecipeBook/pkg/model"
)

type LikeRepository interface {
	ToggleLike(ctx context.Context, recipeID uint, userID uint) (bool, error)
	IsLikedBy(ctx context.Context, recipeID uint, userID uint) (bool, error)
	CountLikes(ctx context.Context, recipeID uint) (int64, error)
	GetLikedRecipes(ctx context.Context, userID uint) ([]*model.Recipe, error)
}

// ToggleLike removes the user's like when present and adds it otherwise.
// It reports whether the recipe is liked after the call.
func (r *Repository) ToggleLike(ctx context.Context, recipeID uint, userID uint) (bool, error) {
	var liked bool

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).Delete(&model.RecipeLike{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			liked = false

			return nil
		}

		if result := tx.Create(&model.RecipeLike{RecipeID: recipeID, UserID: userID}); result.Error != nil {
			return result.Error
		}

		liked = true

		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent toggle inserted the same like first
		return true, nil
	}

	if err != nil {
		r.Logger.Error("error toggling like", zap.Uint("recipe_id", recipeID), zap.Uint("user_id", userID), zap.Error(err))

		return false, err
	}

	return liked, nil
}

func (r *Repository) IsLikedBy(ctx context.Context, recipeID uint, userID uint) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.RecipeLike{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) CountLikes(ctx context.Context, recipeID uint) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.RecipeLike{}).Where("recipe_id = ?", recipeID).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (r *Repository) GetLikedRecipes(ctx context.Context, userID uint) ([]*model.Recipe, error) {
	var recipes []*model.Recipe

	result := r.DB.WithContext(ctx).
		Joins("INNER JOIN recipe_likes ON recipe_likes.recipe_id = recipes.id").
		Where("recipe_likes.user_id = ?", userID).
		Order("recipe_likes.created_at DESC").
		Find(&recipes)
	if result.Error != nil {
		return nil, result.Error
	}

	return recipes, nil
}
