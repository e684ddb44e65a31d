package server

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/configs"
	"droscher.com/RecipeBook/pkg/media"
	"droscher.com/RecipeBook/pkg/repository"
)

const (
	homeListSize = 4
	bytesPerMB   = 1 << 20
)

type RecipeServer struct {
	logger      *zap.Logger
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
	categories  repository.CategoryRepository
	likes       repository.LikeRepository
	store       media.Store
	validate    *validator.Validate
	mediaPrefix string
	maxUpload   int64
}

func NewRecipeServer(
	recipes repository.RecipeRepository,
	ingredients repository.IngredientRepository,
	categories repository.CategoryRepository,
	likes repository.LikeRepository,
	store media.Store,
	conf configs.Media,
	logger *zap.Logger,
) *RecipeServer {
	return &RecipeServer{
		logger:      logger,
		recipes:     recipes,
		ingredients: ingredients,
		categories:  categories,
		likes:       likes,
		store:       store,
		validate:    newValidator(),
		mediaPrefix: conf.URLPrefix,
		maxUpload:   conf.MaxUploadMB * bytesPerMB,
	}
}
