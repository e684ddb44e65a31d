package server

import (
	"strings"
	"time"

	"go.openly.dev/pointy"

	"droscher.com/RecipeBook/pkg/model"
)

type UserView struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type IngredientView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity *string `json:"quantity"`
}

type DifficultyChoice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type RecipeSummaryView struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Image           string    `json:"image"`
	Description     string    `json:"description"`
	DatePosted      time.Time `json:"date_posted"`
	AuthorID        uint      `json:"author_id"`
	Difficulty      int       `json:"difficulty"`
	DifficultyLabel string    `json:"difficulty_label"`
	LikeCount       *int64    `json:"like_count,omitempty"`
}

type RecipeView struct {
	RecipeSummaryView
	Content     string           `json:"content"`
	Portions    int              `json:"portions"`
	CookingTime int              `json:"cooking_time"`
	Author      *UserView        `json:"author,omitempty"`
	Categories  []CategoryView   `json:"categories"`
	Ingredients []IngredientView `json:"ingredients"`
}

func (s *RecipeServer) mediaURL(key string) string {
	return strings.TrimSuffix(s.mediaPrefix, "/") + "/" + strings.TrimPrefix(key, "/")
}

func (s *RecipeServer) summaryFromRecipe(recipe *model.Recipe) RecipeSummaryView {
	return RecipeSummaryView{
		ID:              recipe.ID,
		Title:           recipe.Title,
		Slug:            recipe.Slug,
		Image:           s.mediaURL(recipe.Image),
		Description:     recipe.Description,
		DatePosted:      recipe.DatePosted,
		AuthorID:        recipe.AuthorID,
		Difficulty:      int(recipe.Difficulty),
		DifficultyLabel: recipe.Difficulty.String(),
	}
}

func (s *RecipeServer) summariesFromRecipes(recipes []*model.Recipe) []RecipeSummaryView {
	views := make([]RecipeSummaryView, 0, len(recipes))

	for _, recipe := range recipes {
		views = append(views, s.summaryFromRecipe(recipe))
	}

	return views
}

func (s *RecipeServer) summariesFromSummaries(summaries []*model.RecipeSummary) []RecipeSummaryView {
	views := make([]RecipeSummaryView, 0, len(summaries))

	for _, summary := range summaries {
		views = append(views, RecipeSummaryView{
			ID:              summary.ID,
			Title:           summary.Title,
			Slug:            summary.Slug,
			Image:           s.mediaURL(summary.Image),
			Description:     summary.Description,
			DatePosted:      summary.DatePosted,
			AuthorID:        summary.AuthorID,
			Difficulty:      int(summary.Difficulty),
			DifficultyLabel: summary.Difficulty.String(),
			LikeCount:       pointy.Int64(summary.LikeCount),
		})
	}

	return views
}

func (s *RecipeServer) recipeView(recipe *model.Recipe) RecipeView {
	view := RecipeView{
		RecipeSummaryView: s.summaryFromRecipe(recipe),
		Content:           recipe.Content,
		Portions:          recipe.Portions,
		CookingTime:       recipe.CookingTime,
		Categories:        make([]CategoryView, 0, len(recipe.Categories)),
		Ingredients:       make([]IngredientView, 0, len(recipe.Ingredients)),
	}

	if recipe.Author.ID != 0 {
		view.Author = &UserView{
			Username:  recipe.Author.Username,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
		}
	}

	for _, category := range recipe.Categories {
		view.Categories = append(view.Categories, categoryView(&category))
	}

	for _, ingredient := range recipe.Ingredients {
		view.Ingredients = append(view.Ingredients, ingredientView(&ingredient))
	}

	return view
}

func categoryView(category *model.Category) CategoryView {
	return CategoryView{ID: category.ID, Name: category.Name, Slug: category.Slug}
}

func categoryViews(categories []*model.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))

	for _, category := range categories {
		views = append(views, categoryView(category))
	}

	return views
}

func ingredientView(ingredient *model.Ingredient) IngredientView {
	view := IngredientView{ID: ingredient.ID, Name: ingredient.Name}

	if ingredient.Quantity != nil {
		view.Quantity = pointy.String(*ingredient.Quantity)
	}

	return view
}

func ingredientViews(ingredients []*model.Ingredient) []IngredientView {
	views := make([]IngredientView, 0, len(ingredients))

	for _, ingredient := range ingredients {
		views = append(views, ingredientView(ingredient))
	}

	return views
}

func difficultyChoices() []DifficultyChoice {
	choices := make([]DifficultyChoice, 0, len(model.Difficulties))

	for _, difficulty := range model.Difficulties {
		choices = append(choices, DifficultyChoice{Value: int(difficulty), Label: difficulty.String()})
	}

	return choices
}
