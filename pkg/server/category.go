package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CategoryListPage struct {
	Page
	Categories []CategoryView `json:"categories"`
}

type CategoryPage struct {
	Page
	Category CategoryView        `json:"category"`
	Recipes  []RecipeSummaryView `json:"recipes"`
}

func (s *RecipeServer) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.GetCategories(r.Context())
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &CategoryListPage{Categories: categoryViews(categories)})
}

func (s *RecipeServer) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	category, err := s.categories.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	recipes, err := s.recipes.GetRecipesInCategory(r.Context(), category.ID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &CategoryPage{Category: categoryView(category), Recipes: s.summariesFromRecipes(recipes)})
}
