package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/repository"
)

const (
	msgNoAddPermission    = "You do not have permission to add ingredients."
	msgNoDeletePermission = "You do not have permission to delete this ingredient."
	msgRecipeSaved        = "Your recipe has been successfully saved."
	msgIngredientAdded    = "Your ingredient has been successfully added."
	msgIngredientDeleted  = "Ingredient has been successfully deleted."
)

type IngredientPage struct {
	Page
	Recipe      RecipeView       `json:"recipe"`
	Ingredients []IngredientView `json:"ingredients"`
	Form        *IngredientForm  `json:"form,omitempty"`
}

func ingredientURL(recipeID uint) string {
	return fmt.Sprintf("/recipes/create/ingredients/%d", recipeID)
}

// ingredientRecipe loads the recipe named by the id URL parameter and checks
// the current user wrote it.
func (s *RecipeServer) ingredientRecipe(w http.ResponseWriter, r *http.Request) (*model.Recipe, bool) {
	recipeID, ok := idParam(r, "id")
	if !ok {
		s.handleError(w, r, repository.ErrRecipeNotFound)

		return nil, false
	}

	recipe, err := s.recipes.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		s.handleError(w, r, err)

		return nil, false
	}

	return recipe, s.checkAuthor(w, r, recipe, msgNoAddPermission)
}

func (s *RecipeServer) IngredientForm(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.ingredientRecipe(w, r)
	if !ok {
		return
	}

	s.renderIngredientPage(w, r, http.StatusOK, recipe, nil, nil)
}

func (s *RecipeServer) renderIngredientPage(w http.ResponseWriter, r *http.Request, status int, recipe *model.Recipe, form *IngredientForm, fields map[string]string) {
	ingredients, err := s.ingredients.GetIngredientsForRecipe(r.Context(), recipe.ID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	if len(fields) > 0 {
		s.fail(w, r, status, "validation failed", fields)

		return
	}

	s.render(w, r, status, &IngredientPage{
		Recipe:      s.recipeView(recipe),
		Ingredients: ingredientViews(ingredients),
		Form:        form,
	})
}

// AddIngredient attaches one ingredient. A finish field in the form ends the
// workflow on the recipe page, otherwise the client returns to add another.
func (s *RecipeServer) AddIngredient(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.ingredientRecipe(w, r)
	if !ok {
		return
	}

	if err := s.parseForm(w, r); err != nil {
		s.fail(w, r, http.StatusBadRequest, "malformed form: "+err.Error(), nil)

		return
	}

	form, fields := s.ingredientForm(r)
	if len(fields) > 0 {
		s.renderIngredientPage(w, r, http.StatusUnprocessableEntity, recipe, form, fields)

		return
	}

	ingredient, err := s.ingredients.AddIngredient(r.Context(), recipe.ID, form.Name, form.quantity())
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.logger.Info("added ingredient", zap.Uint("recipe_id", recipe.ID), zap.Uint("ingredient_id", ingredient.ID))

	if r.PostForm.Has("finish") {
		s.redirect(w, r, "/recipes/"+recipe.Slug+"/", success(msgRecipeSaved))

		return
	}

	s.redirect(w, r, ingredientURL(recipe.ID), success(msgIngredientAdded))
}

func (s *RecipeServer) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	ingredientID, ok := idParam(r, "id")
	if !ok {
		s.handleError(w, r, repository.ErrIngredientNotFound)

		return
	}

	ingredient, err := s.ingredients.GetIngredientByID(r.Context(), ingredientID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	recipe, err := s.recipes.GetRecipeByID(r.Context(), ingredient.RecipeID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	if !s.checkAuthor(w, r, recipe, msgNoDeletePermission) {
		return
	}

	if err := s.ingredients.DeleteIngredient(r.Context(), ingredient.ID); err != nil {
		s.handleError(w, r, err)

		return
	}

	s.redirect(w, r, ingredientURL(recipe.ID), success(msgIngredientDeleted))
}
