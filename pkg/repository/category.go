package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/slug"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

const categorySlugFallback = "category"

type CategoryRepository interface {
	AddCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryBySlug(ctx context.Context, categorySlug string) (*model.Category, error)
	GetCategoriesByIDs(ctx context.Context, categoryIDs []uint) ([]*model.Category, error)
}

func (r *Repository) AddCategory(ctx context.Context, name string) (*model.Category, error) {
	categorySlug, err := slug.Unique(ctx, slug.Make(name, categorySlugFallback), r.categorySlugExists)
	if err != nil {
		return nil, err
	}

	category := model.Category{Name: name, Slug: categorySlug}

	if result := r.DB.WithContext(ctx).Create(&category); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryExists, name)
		}

		return nil, result.Error
	}

	return &category, nil
}

func (r *Repository) categorySlugExists(ctx context.Context, candidate string) (bool, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Category{}).Where("slug = ?", candidate).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *Repository) GetCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category

	if result := r.DB.WithContext(ctx).Order("name ASC").Find(&categories); result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (r *Repository) GetCategoryBySlug(ctx context.Context, categorySlug string) (*model.Category, error) {
	var category model.Category

	result := r.DB.WithContext(ctx).Where("slug = ?", categorySlug).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, categorySlug)
		}

		return nil, result.Error
	}

	return &category, nil
}

// GetCategoriesByIDs fails with ErrCategoryNotFound unless every id exists.
func (r *Repository) GetCategoriesByIDs(ctx context.Context, categoryIDs []uint) ([]*model.Category, error) {
	var categories []*model.Category

	if len(categoryIDs) == 0 {
		return categories, nil
	}

	unique := make(map[uint]struct{}, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		unique[categoryID] = struct{}{}
	}

	if result := r.DB.WithContext(ctx).Where("id IN ?", categoryIDs).Order("name ASC").Find(&categories); result.Error != nil {
		return nil, result.Error
	}

	if len(categories) != len(unique) {
		return nil, fmt.Errorf("%w: ids %v", ErrCategoryNotFound, categoryIDs)
	}

	return categories, nil
}
