package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/auth"
	"droscher.com/RecipeBook/pkg/media"
	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/repository"
)

type HomePage struct {
	Page
	MostLiked []RecipeSummaryView `json:"most_liked"`
	Recent    []RecipeSummaryView `json:"recent"`
}

type RecipeListPage struct {
	Page
	Recipes []RecipeSummaryView `json:"recipes"`
}

type SearchPage struct {
	Page
	Query   string              `json:"query"`
	Recipes []RecipeSummaryView `json:"recipes"`
}

type RecipeDetailPage struct {
	Page
	Recipe    RecipeView `json:"recipe"`
	LikeCount int64      `json:"like_count"`
	Liked     bool       `json:"liked"`
	IsAuthor  bool       `json:"is_author"`
}

type RecipeFormPage struct {
	Page
	Form         *RecipeForm        `json:"form,omitempty"`
	Recipe       *RecipeView        `json:"recipe,omitempty"`
	Categories   []CategoryView     `json:"categories"`
	Difficulties []DifficultyChoice `json:"difficulties"`
}

func (s *RecipeServer) Home(w http.ResponseWriter, r *http.Request) {
	mostLiked, err := s.recipes.MostLikedRecipes(r.Context(), homeListSize)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	recent, err := s.recipes.RecentRecipes(r.Context(), homeListSize)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &HomePage{
		MostLiked: s.summariesFromSummaries(mostLiked),
		Recent:    s.summariesFromRecipes(recent),
	})
}

func (s *RecipeServer) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.ListRecipes(r.Context())
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &RecipeListPage{Recipes: s.summariesFromRecipes(recipes)})
}

func (s *RecipeServer) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	recipes, err := s.recipes.SearchRecipes(r.Context(), query)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &SearchPage{Query: query, Recipes: s.summariesFromRecipes(recipes)})
}

func (s *RecipeServer) MyRecipes(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	recipes, err := s.recipes.GetRecipesByAuthor(r.Context(), user.ID)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, &RecipeListPage{Recipes: s.summariesFromRecipes(recipes)})
}

func (s *RecipeServer) RecipeDetail(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.recipes.GetRecipeBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	page, err := s.detailPage(r.Context(), recipe)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, page)
}

func (s *RecipeServer) detailPage(ctx context.Context, recipe *model.Recipe) (*RecipeDetailPage, error) {
	likeCount, err := s.likes.CountLikes(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	page := RecipeDetailPage{Recipe: s.recipeView(recipe), LikeCount: likeCount}

	if user, ok := auth.UserFromContext(ctx); ok {
		page.IsAuthor = user.ID == recipe.AuthorID

		page.Liked, err = s.likes.IsLikedBy(ctx, recipe.ID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &page, nil
}

func (s *RecipeServer) NewRecipeForm(w http.ResponseWriter, r *http.Request) {
	page, err := s.formPage(r.Context(), nil, nil)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, page)
}

func (s *RecipeServer) formPage(ctx context.Context, form *RecipeForm, recipe *model.Recipe) (*RecipeFormPage, error) {
	categories, err := s.categories.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	page := RecipeFormPage{Form: form, Categories: categoryViews(categories), Difficulties: difficultyChoices()}

	if recipe != nil {
		view := s.recipeView(recipe)
		page.Recipe = &view
	}

	return &page, nil
}

// CreateRecipe stores a new recipe owned by the current user and sends the
// client on to the ingredient step.
func (s *RecipeServer) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	form, ok := s.validRecipeForm(w, r)
	if !ok {
		return
	}

	image, err := s.saveUpload(r)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	recipe := model.Recipe{AuthorID: user.ID, Image: image}
	form.apply(&recipe)

	created, err := s.recipes.CreateRecipe(r.Context(), &recipe, form.Categories)
	if err != nil {
		s.discardUpload(r.Context(), image)

		if errors.Is(err, repository.ErrSlugConflict) {
			s.fail(w, r, http.StatusConflict, "validation failed", map[string]string{"title": "A recipe with this title is being saved, please try again."})

			return
		}

		s.handleError(w, r, err)

		return
	}

	s.logger.Info("created recipe", zap.Uint("recipe_id", created.ID), zap.String("slug", created.Slug), zap.Uint("author_id", user.ID))

	if err := media.Normalize(r.Context(), s.store, created.Image); err != nil {
		s.handleError(w, r, err)

		return
	}

	s.redirect(w, r, fmt.Sprintf("/recipes/create/ingredients/%d", created.ID))
}

// validRecipeForm parses and validates the recipe form, answering the
// request itself when the input is unusable.
func (s *RecipeServer) validRecipeForm(w http.ResponseWriter, r *http.Request) (*RecipeForm, bool) {
	if err := s.parseForm(w, r); err != nil {
		s.fail(w, r, http.StatusBadRequest, "malformed form: "+err.Error(), nil)

		return nil, false
	}

	form, fields := s.recipeForm(r)

	message, err := imageError(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, "malformed form: "+err.Error(), nil)

		return nil, false
	}

	if message != "" {
		fields["image"] = message
	}

	if len(fields) > 0 {
		s.fail(w, r, http.StatusUnprocessableEntity, "validation failed", fields)

		return nil, false
	}

	if _, err := s.categories.GetCategoriesByIDs(r.Context(), form.Categories); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			s.fail(w, r, http.StatusUnprocessableEntity, "validation failed", map[string]string{"category": "Select a valid choice."})

			return nil, false
		}

		s.handleError(w, r, err)

		return nil, false
	}

	return form, true
}

// saveUpload stores the uploaded image and returns its key, or the default
// image when nothing was uploaded.
func (s *RecipeServer) saveUpload(r *http.Request) (string, error) {
	file, header, err := formImage(r)
	if err != nil {
		return "", err
	}

	if file == nil {
		return model.DefaultImage, nil
	}

	defer file.Close()

	key := media.NewKey(header.Filename)
	if err := s.store.Save(r.Context(), key, file, header.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	return key, nil
}

func (s *RecipeServer) discardUpload(ctx context.Context, key string) {
	if key == "" || key == model.DefaultImage {
		return
	}

	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("error removing image", zap.String("key", key), zap.Error(err))
	}
}

// authoredRecipe loads the recipe named in the URL and checks the current
// user wrote it; otherwise it redirects home with denied.
func (s *RecipeServer) authoredRecipe(w http.ResponseWriter, r *http.Request, denied string) (*model.Recipe, bool) {
	recipe, err := s.recipes.GetRecipeBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, r, err)

		return nil, false
	}

	return recipe, s.checkAuthor(w, r, recipe, denied)
}

func (s *RecipeServer) checkAuthor(w http.ResponseWriter, r *http.Request, recipe *model.Recipe, denied string) bool {
	user, _ := auth.UserFromContext(r.Context())
	if user.ID == recipe.AuthorID {
		return true
	}

	s.logger.Warn("permission denied", zap.Uint("recipe_id", recipe.ID), zap.Uint("user_id", user.ID), zap.String("path", r.URL.Path))
	s.redirect(w, r, "/", failure(denied))

	return false
}

func (s *RecipeServer) EditRecipeForm(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.authoredRecipe(w, r, "You do not have permission to edit this recipe.")
	if !ok {
		return
	}

	page, err := s.formPage(r.Context(), formFromRecipe(recipe), recipe)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	s.render(w, r, http.StatusOK, page)
}

// UpdateRecipe rewrites the editable fields. Slug and author never change.
func (s *RecipeServer) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.authoredRecipe(w, r, "You do not have permission to edit this recipe.")
	if !ok {
		return
	}

	form, ok := s.validRecipeForm(w, r)
	if !ok {
		return
	}

	image, err := s.saveUpload(r)
	if err != nil {
		s.handleError(w, r, err)

		return
	}

	previousImage := recipe.Image
	if image != model.DefaultImage {
		recipe.Image = image
	}

	form.apply(recipe)

	updated, err := s.recipes.UpdateRecipe(r.Context(), recipe, form.Categories)
	if err != nil {
		s.discardUpload(r.Context(), image)
		s.handleError(w, r, err)

		return
	}

	if updated.Image != previousImage {
		if err := media.Normalize(r.Context(), s.store, updated.Image); err != nil {
			s.handleError(w, r, err)

			return
		}

		s.discardUpload(r.Context(), previousImage)
	}

	s.redirect(w, r, "/recipes/"+updated.Slug+"/", success("Your recipe has been successfully updated."))
}

func (s *RecipeServer) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, ok := s.authoredRecipe(w, r, "You do not have permission to delete this recipe.")
	if !ok {
		return
	}

	if err := s.recipes.DeleteRecipe(r.Context(), recipe.ID); err != nil {
		s.handleError(w, r, err)

		return
	}

	s.discardUpload(r.Context(), recipe.Image)
	s.logger.Info("deleted recipe", zap.Uint("recipe_id", recipe.ID), zap.String("slug", recipe.Slug))

	s.redirect(w, r, "/myRecipes/", success(fmt.Sprintf("Recipe %s has been deleted.", recipe.Title)))
}
