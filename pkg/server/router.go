package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"droscher.com/RecipeBook/pkg/auth"
)

// Routes builds the HTTP surface. authenticate attaches the current user to
// the request context; anonymous requests to member pages are sent to
// loginURL.
func (s *RecipeServer) Routes(authenticate func(http.Handler) http.Handler, loginURL string, metrics *Metrics) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger(s.logger))
	router.Use(middleware.Recoverer)

	if metrics != nil {
		router.Use(metrics.Middleware)
	}

	router.Use(authenticate)

	if metrics != nil {
		router.Handle("/metrics", metrics.Handler())
	}

	router.Get("/", s.Home)
	router.Get("/recipes/", s.ListRecipes)
	router.Get("/recipes/{slug}/", s.RecipeDetail)
	router.Get("/categories/", s.ListCategories)
	router.Get("/categories/{slug}/", s.CategoryDetail)
	router.Get("/search/", s.Search)
	router.Get(strings.TrimSuffix(s.mediaPrefix, "/")+"/*", s.ServeMedia)

	router.Group(func(router chi.Router) {
		router.Use(auth.RequireUser(loginURL))

		router.Get("/recipes/create/", s.NewRecipeForm)
		router.Post("/recipes/create/", s.CreateRecipe)
		router.Get("/recipes/create/ingredients/{id}", s.IngredientForm)
		router.Post("/recipes/create/ingredients/{id}", s.AddIngredient)
		router.Post("/recipes/create/ingredients/{id}/delete/", s.DeleteIngredient)
		router.Get("/recipes/{slug}/edit/", s.EditRecipeForm)
		router.Post("/recipes/{slug}/edit/", s.UpdateRecipe)
		router.Post("/recipes/{slug}/delete/", s.DeleteRecipe)
		router.Get("/favourites/", s.ListFavourites)
		router.Post("/favourites/{slug}/", s.ToggleFavourite)
		router.Get("/myRecipes/", s.MyRecipes)
	})

	return router
}
