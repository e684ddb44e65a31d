package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/RecipeBook/pkg/auth"
)

func (s *RecipeServer) ListFavourites(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	recipes, err := s.likes.GetLikedRecipes(r.Context(), user.ID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &RecipeListPage{Recipes: s.summariesFromRecipes(recipes)})
}

// ToggleFavourite flips the current user's like and answers with the
// refreshed recipe page.
func (s *RecipeServer) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	recipe, err := s.recipes.GetRecipeBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	liked, err := s.likes.ToggleLike(r.Context(), recipe.ID, user.ID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	message := fmt.Sprintf("Recipe %s has been removed from favorites", recipe.Title)
	if liked {
		message = fmt.Sprintf("Recipe %s has been added to favorites", recipe.Title)
	}

	page, err := s.detailPage(r.Context(), recipe)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, page, success(message))
}
