package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"droscher.com/RecipeBook/pkg/model"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type IngredientRepository interface {
	AddIngredient(ctx context.Context, recipeID uint, name string, quantity *string) (*model.Ingredient, error)
	GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
	GetIngredientsForRecipe(ctx context.Context, recipeID uint) ([]*model.Ingredient, error)
	DeleteIngredient(ctx context.Context, ingredientID uint) error
}

func (r *Repository) AddIngredient(ctx context.Context, recipeID uint, name string, quantity *string) (*model.Ingredient, error) {
	ingredient := model.Ingredient{
		Name:     name,
		Quantity: quantity,
		RecipeID: recipeID,
	}

	if result := r.DB.WithContext(ctx).Create(&ingredient); result.Error != nil {
		return nil, result.Error
	}

	return &ingredient, nil
}

func (r *Repository) GetIngredientByID(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	result := r.DB.WithContext(ctx).First(&ingredient, ingredientID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrIngredientNotFound, ingredientID)
		}

		return nil, result.Error
	}

	return &ingredient, nil
}

func (r *Repository) GetIngredientsForRecipe(ctx context.Context, recipeID uint) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	if result := r.DB.WithContext(ctx).Where("recipe_id = ?", recipeID).Order("id ASC").Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) DeleteIngredient(ctx context.Context, ingredientID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Ingredient{}, ingredientID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrIngredientNotFound, ingredientID)
	}

	return nil
}
