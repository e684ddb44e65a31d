package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/RecipeBook/configs"
	"droscher.com/RecipeBook/mocks"
	"droscher.com/RecipeBook/pkg/auth"
	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/server"
)

const testUserHeader = "X-Test-User"

type ServerTestSuite struct {
	suite.Suite
	recipes      *mocks.RecipeRepository
	ingredients  *mocks.IngredientRepository
	categories   *mocks.CategoryRepository
	likes        *mocks.LikeRepository
	store        *mocks.Store
	observedLogs *observer.ObservedLogs
	metrics      *server.Metrics
	router       http.Handler
	users        map[string]*model.User
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.recipes = mocks.NewRecipeRepository(suite.T())
	suite.ingredients = mocks.NewIngredientRepository(suite.T())
	suite.categories = mocks.NewCategoryRepository(suite.T())
	suite.likes = mocks.NewLikeRepository(suite.T())
	suite.store = mocks.NewStore(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.users = map[string]*model.User{
		"1": {Model: gorm.Model{ID: 1}, Username: "nonna"},
		"2": {Model: gorm.Model{ID: 2}, Username: "guest"},
	}

	recipeServer := server.NewRecipeServer(suite.recipes, suite.ingredients, suite.categories, suite.likes, suite.store,
		configs.Media{URLPrefix: "/media/", MaxUploadMB: 2}, zap.New(observedZapCore))
	suite.metrics = server.NewMetrics()
	suite.router = recipeServer.Routes(suite.authenticate, "/login/", suite.metrics)
}

// authenticate trusts a header naming the user, standing in for the JWT middleware.
func (suite *ServerTestSuite) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := suite.users[r.Header.Get(testUserHeader)]; ok {
			r = r.WithContext(auth.WithUser(r.Context(), user))
		}

		next.ServeHTTP(w, r)
	})
}

func (suite *ServerTestSuite) do(request *http.Request, userID uint, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	if userID != 0 {
		request.Header.Set(testUserHeader, strconv.Itoa(int(userID)))
	}

	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerTestSuite) get(target string, userID uint, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return suite.do(httptest.NewRequest(http.MethodGet, target, nil), userID, cookies...)
}

func (suite *ServerTestSuite) postForm(target string, values url.Values, userID uint) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return suite.do(request, userID)
}

func (suite *ServerTestSuite) decode(recorder *httptest.ResponseRecorder, target any) {
	suite.Equal("application/json", recorder.Header().Get("Content-Type"))
	suite.Require().NoError(json.NewDecoder(recorder.Body).Decode(target))
}

func flashCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "flash" {
			return cookie
		}
	}

	return nil
}

// messagesAfterRedirect replays the flash cookie against the category list,
// the cheapest page, and returns the messages it renders.
func (suite *ServerTestSuite) messagesAfterRedirect(recorder *httptest.ResponseRecorder) []server.FlashMessage {
	cookie := flashCookie(recorder)
	suite.Require().NotNil(cookie)

	suite.categories.EXPECT().GetCategories(mock.Anything).Return(nil, nil).Once()

	next := suite.get("/categories/", 0, cookie)
	suite.Equal(http.StatusOK, next.Code)

	cleared := flashCookie(next)
	suite.Require().NotNil(cleared)
	suite.Less(cleared.MaxAge, 0)

	var page server.CategoryListPage
	suite.decode(next, &page)

	return page.Messages
}

func soup() *model.Recipe {
	return &model.Recipe{
		ID:          7,
		Title:       "Soup",
		Slug:        "soup",
		Image:       model.DefaultImage,
		AuthorID:    1,
		Difficulty:  model.Easy,
		Portions:    2,
		CookingTime: 30,
		Author:      model.User{Model: gorm.Model{ID: 1}, Username: "nonna"},
		Ingredients: []model.Ingredient{{ID: 1, Name: "Water", RecipeID: 7}},
	}
}

func validRecipeValues() url.Values {
	return url.Values{
		"title":        {"Tomato Soup"},
		"description":  {"Warming."},
		"content":      {"Simmer everything."},
		"difficulty":   {"2"},
		"portions":     {"4"},
		"cooking_time": {"40"},
		"category":     {"3"},
	}
}

func (suite *ServerTestSuite) TestHome_ListsMostLikedAndRecent() {
	suite.recipes.EXPECT().MostLikedRecipes(mock.Anything, 4).
		Return([]*model.RecipeSummary{{ID: 2, Title: "Lasagne", Slug: "lasagne", Image: model.DefaultImage, Difficulty: model.Hard, LikeCount: 5}}, nil)
	suite.recipes.EXPECT().RecentRecipes(mock.Anything, 4).Return([]*model.Recipe{soup()}, nil)

	recorder := suite.get("/", 0)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.HomePage
	suite.decode(recorder, &page)

	suite.Require().Len(page.MostLiked, 1)
	suite.Equal(int64(5), *page.MostLiked[0].LikeCount)
	suite.Equal("Hard", page.MostLiked[0].DifficultyLabel)
	suite.Equal("/media/default.jpg", page.MostLiked[0].Image)
	suite.Require().Len(page.Recent, 1)
	suite.Nil(page.Recent[0].LikeCount)
	suite.NotNil(page.Messages)
	suite.Empty(page.Messages)
}

func (suite *ServerTestSuite) TestRecipeDetail_NotFound() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "missing").Return(nil, repositoryNotFound())

	recorder := suite.get("/recipes/missing/", 0)
	suite.Equal(http.StatusNotFound, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Contains(response.Error, "recipe not found")
}

func (suite *ServerTestSuite) TestRecipeDetail_ShowsLikesForUser() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)
	suite.likes.EXPECT().CountLikes(mock.Anything, uint(7)).Return(int64(2), nil)
	suite.likes.EXPECT().IsLikedBy(mock.Anything, uint(7), uint(2)).Return(true, nil)

	recorder := suite.get("/recipes/soup/", 2)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeDetailPage
	suite.decode(recorder, &page)

	suite.Equal("Soup", page.Recipe.Title)
	suite.Equal(int64(2), page.LikeCount)
	suite.True(page.Liked)
	suite.False(page.IsAuthor)
	suite.Require().NotNil(page.Recipe.Author)
	suite.Equal("nonna", page.Recipe.Author.Username)
	suite.Require().Len(page.Recipe.Ingredients, 1)
	suite.Equal("Water", page.Recipe.Ingredients[0].Name)
}

func (suite *ServerTestSuite) TestSearch_EchoesQuery() {
	suite.recipes.EXPECT().SearchRecipes(mock.Anything, "Pizza").Return([]*model.Recipe{{ID: 3, Title: "Pizza Margherita", Slug: "pizza-margherita"}}, nil)

	recorder := suite.get("/search/?q=Pizza", 0)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.SearchPage
	suite.decode(recorder, &page)
	suite.Equal("Pizza", page.Query)
	suite.Len(page.Recipes, 1)
}

func (suite *ServerTestSuite) TestMemberPages_RedirectAnonymousToLogin() {
	for _, target := range []string{"/recipes/create/", "/favourites/", "/myRecipes/", "/recipes/create/ingredients/7"} {
		recorder := suite.get(target, 0)

		suite.Equal(http.StatusSeeOther, recorder.Code, target)
		suite.Equal("/login/?next="+url.QueryEscape(target), recorder.Header().Get("Location"))
	}
}

func (suite *ServerTestSuite) TestNewRecipeForm_ListsChoices() {
	suite.categories.EXPECT().GetCategories(mock.Anything).Return([]*model.Category{{ID: 3, Name: "Soups", Slug: "soups"}}, nil)

	recorder := suite.get("/recipes/create/", 1)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeFormPage
	suite.decode(recorder, &page)
	suite.Len(page.Categories, 1)
	suite.Require().Len(page.Difficulties, 5)
	suite.Equal("Very Easy", page.Difficulties[0].Label)
	suite.Nil(page.Form)
}

func (suite *ServerTestSuite) TestCreateRecipe_ValidationFailureSavesNothing() {
	values := validRecipeValues()
	values.Set("title", "  ")
	values.Set("portions", "many")
	values.Set("difficulty", "9")

	recorder := suite.postForm("/recipes/create/", values, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("validation failed", response.Error)
	suite.Equal("This field is required.", response.Fields["title"])
	suite.Equal("Enter a whole number.", response.Fields["portions"])
	suite.Equal("Ensure this value is less than or equal to 5.", response.Fields["difficulty"])
}

func (suite *ServerTestSuite) TestCreateRecipe_RequiresCategory() {
	values := validRecipeValues()
	values.Del("category")

	recorder := suite.postForm("/recipes/create/", values, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("This field is required.", response.Fields["category"])
}

func (suite *ServerTestSuite) TestUpdateRecipe_RequiresCategory() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)

	values := validRecipeValues()
	values.Del("category")

	recorder := suite.postForm("/recipes/soup/edit/", values, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("This field is required.", response.Fields["category"])
}

func (suite *ServerTestSuite) TestCreateRecipe_UnknownCategory() {
	suite.categories.EXPECT().GetCategoriesByIDs(mock.Anything, []uint{3}).Return(nil, categoryNotFound())

	recorder := suite.postForm("/recipes/create/", validRecipeValues(), 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("Select a valid choice.", response.Fields["category"])
}

func (suite *ServerTestSuite) TestCreateRecipe_RedirectsToIngredients() {
	suite.categories.EXPECT().GetCategoriesByIDs(mock.Anything, []uint{3}).Return([]*model.Category{{ID: 3}}, nil)
	suite.recipes.EXPECT().CreateRecipe(mock.Anything, mock.MatchedBy(func(recipe *model.Recipe) bool {
		return recipe.AuthorID == 1 && recipe.Title == "Tomato Soup" && recipe.Image == model.DefaultImage &&
			recipe.Difficulty == model.Easy && recipe.Portions == 4 && recipe.CookingTime == 40
	}), []uint{3}).RunAndReturn(func(_ context.Context, recipe *model.Recipe, _ []uint) (*model.Recipe, error) {
		recipe.ID = 12
		recipe.Slug = "tomato-soup"

		return recipe, nil
	})

	recorder := suite.postForm("/recipes/create/", validRecipeValues(), 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/create/ingredients/12", recorder.Header().Get("Location"))
	suite.Equal(1, suite.observedLogs.FilterMessage("created recipe").Len())
}

func (suite *ServerTestSuite) TestCreateRecipe_SlugConflict() {
	suite.categories.EXPECT().GetCategoriesByIDs(mock.Anything, []uint{3}).Return([]*model.Category{{ID: 3}}, nil)
	suite.recipes.EXPECT().CreateRecipe(mock.Anything, mock.Anything, []uint{3}).Return(nil, slugConflict())

	recorder := suite.postForm("/recipes/create/", validRecipeValues(), 1)
	suite.Equal(http.StatusConflict, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Contains(response.Fields, "title")
}

func (suite *ServerTestSuite) TestAddIngredient_NonAuthorIsRejected() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)

	recorder := suite.postForm("/recipes/create/ingredients/7", url.Values{"name": {"Salt"}}, 2)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal(server.LevelError, messages[0].Level)
	suite.Equal("You do not have permission to add ingredients.", messages[0].Text)
	suite.Equal(1, suite.observedLogs.FilterMessage("permission denied").Len())
}

func (suite *ServerTestSuite) TestAddIngredient_AddsAnother() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)
	suite.ingredients.EXPECT().AddIngredient(mock.Anything, uint(7), "Salt", mock.MatchedBy(func(quantity *string) bool {
		return quantity != nil && *quantity == "1 pinch"
	})).Return(&model.Ingredient{ID: 4, Name: "Salt", RecipeID: 7}, nil)

	recorder := suite.postForm("/recipes/create/ingredients/7", url.Values{"name": {"Salt"}, "quantity": {"1 pinch"}}, 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/create/ingredients/7", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal("Your ingredient has been successfully added.", messages[0].Text)
}

func (suite *ServerTestSuite) TestAddIngredient_FinishGoesToRecipe() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)
	suite.ingredients.EXPECT().AddIngredient(mock.Anything, uint(7), "Pepper", (*string)(nil)).
		Return(&model.Ingredient{ID: 5, Name: "Pepper", RecipeID: 7}, nil)

	recorder := suite.postForm("/recipes/create/ingredients/7", url.Values{"name": {"Pepper"}, "finish": {""}}, 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/soup/", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal(server.LevelSuccess, messages[0].Level)
	suite.Equal("Your recipe has been successfully saved.", messages[0].Text)
}

func (suite *ServerTestSuite) TestAddIngredient_RequiresName() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)
	suite.ingredients.EXPECT().GetIngredientsForRecipe(mock.Anything, uint(7)).Return(nil, nil)

	recorder := suite.postForm("/recipes/create/ingredients/7", url.Values{"quantity": {"2"}}, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("This field is required.", response.Fields["name"])
}

func (suite *ServerTestSuite) TestIngredientForm_ListsIngredients() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)
	suite.ingredients.EXPECT().GetIngredientsForRecipe(mock.Anything, uint(7)).
		Return([]*model.Ingredient{{ID: 1, Name: "Water"}, {ID: 2, Name: "Salt"}}, nil)

	recorder := suite.get("/recipes/create/ingredients/7", 1)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.IngredientPage
	suite.decode(recorder, &page)
	suite.Equal("soup", page.Recipe.Slug)
	suite.Len(page.Ingredients, 2)
}

func (suite *ServerTestSuite) TestIngredientForm_BadID() {
	recorder := suite.get("/recipes/create/ingredients/abc", 1)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ServerTestSuite) TestDeleteIngredient_NonAuthorIsRejected() {
	suite.ingredients.EXPECT().GetIngredientByID(mock.Anything, uint(4)).Return(&model.Ingredient{ID: 4, RecipeID: 7}, nil)
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)

	recorder := suite.postForm("/recipes/create/ingredients/4/delete/", nil, 2)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal("You do not have permission to delete this ingredient.", messages[0].Text)
}

func (suite *ServerTestSuite) TestDeleteIngredient_Deletes() {
	suite.ingredients.EXPECT().GetIngredientByID(mock.Anything, uint(4)).Return(&model.Ingredient{ID: 4, RecipeID: 7}, nil)
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(7)).Return(soup(), nil)
	suite.ingredients.EXPECT().DeleteIngredient(mock.Anything, uint(4)).Return(nil)

	recorder := suite.postForm("/recipes/create/ingredients/4/delete/", nil, 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/create/ingredients/7", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal("Ingredient has been successfully deleted.", messages[0].Text)
}

func (suite *ServerTestSuite) TestToggleFavourite_ReportsChange() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)
	suite.likes.EXPECT().ToggleLike(mock.Anything, uint(7), uint(2)).Return(true, nil)
	suite.likes.EXPECT().CountLikes(mock.Anything, uint(7)).Return(int64(1), nil)
	suite.likes.EXPECT().IsLikedBy(mock.Anything, uint(7), uint(2)).Return(true, nil)

	recorder := suite.postForm("/favourites/soup/", nil, 2)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeDetailPage
	suite.decode(recorder, &page)
	suite.True(page.Liked)
	suite.Equal(int64(1), page.LikeCount)
	suite.Require().Len(page.Messages, 1)
	suite.Equal("Recipe Soup has been added to favorites", page.Messages[0].Text)
}

func (suite *ServerTestSuite) TestToggleFavourite_Removes() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)
	suite.likes.EXPECT().ToggleLike(mock.Anything, uint(7), uint(1)).Return(false, nil)
	suite.likes.EXPECT().CountLikes(mock.Anything, uint(7)).Return(int64(0), nil)
	suite.likes.EXPECT().IsLikedBy(mock.Anything, uint(7), uint(1)).Return(false, nil)

	recorder := suite.postForm("/favourites/soup/", nil, 1)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeDetailPage
	suite.decode(recorder, &page)
	suite.False(page.Liked)
	suite.True(page.IsAuthor)
	suite.Equal("Recipe Soup has been removed from favorites", page.Messages[0].Text)
}

func (suite *ServerTestSuite) TestListFavourites() {
	suite.likes.EXPECT().GetLikedRecipes(mock.Anything, uint(2)).Return([]*model.Recipe{soup()}, nil)

	recorder := suite.get("/favourites/", 2)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeListPage
	suite.decode(recorder, &page)
	suite.Len(page.Recipes, 1)
}

func (suite *ServerTestSuite) TestMyRecipes() {
	suite.recipes.EXPECT().GetRecipesByAuthor(mock.Anything, uint(1)).Return([]*model.Recipe{soup()}, nil)

	recorder := suite.get("/myRecipes/", 1)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServerTestSuite) TestDeleteRecipe_NonAuthorIsRejected() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)

	recorder := suite.postForm("/recipes/soup/delete/", nil, 2)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/", recorder.Header().Get("Location"))
}

func (suite *ServerTestSuite) TestDeleteRecipe_RemovesRecipeAndImage() {
	recipe := soup()
	recipe.Image = "recipe_pics/soup.png"

	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(recipe, nil)
	suite.recipes.EXPECT().DeleteRecipe(mock.Anything, uint(7)).Return(nil)
	suite.store.EXPECT().Delete(mock.Anything, "recipe_pics/soup.png").Return(nil)

	recorder := suite.postForm("/recipes/soup/delete/", nil, 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/myRecipes/", recorder.Header().Get("Location"))

	messages := suite.messagesAfterRedirect(recorder)
	suite.Require().Len(messages, 1)
	suite.Equal("Recipe Soup has been deleted.", messages[0].Text)
}

func (suite *ServerTestSuite) TestEditRecipeForm_Prefills() {
	recipe := soup()
	recipe.Categories = []model.Category{{ID: 3, Name: "Soups", Slug: "soups"}}

	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(recipe, nil)
	suite.categories.EXPECT().GetCategories(mock.Anything).Return([]*model.Category{{ID: 3, Name: "Soups", Slug: "soups"}}, nil)

	recorder := suite.get("/recipes/soup/edit/", 1)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.RecipeFormPage
	suite.decode(recorder, &page)
	suite.Require().NotNil(page.Form)
	suite.Equal("Soup", page.Form.Title)
	suite.Equal([]uint{3}, page.Form.Categories)
	suite.Require().NotNil(page.Recipe)
}

func (suite *ServerTestSuite) TestUpdateRecipe_KeepsSlugAndAuthor() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)
	suite.categories.EXPECT().GetCategoriesByIDs(mock.Anything, []uint{3}).Return([]*model.Category{{ID: 3}}, nil)
	suite.recipes.EXPECT().UpdateRecipe(mock.Anything, mock.MatchedBy(func(recipe *model.Recipe) bool {
		return recipe.ID == 7 && recipe.Slug == "soup" && recipe.AuthorID == 1 && recipe.Title == "Tomato Soup"
	}), []uint{3}).RunAndReturn(func(_ context.Context, recipe *model.Recipe, _ []uint) (*model.Recipe, error) {
		return recipe, nil
	})

	recorder := suite.postForm("/recipes/soup/edit/", validRecipeValues(), 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/soup/", recorder.Header().Get("Location"))
}

func (suite *ServerTestSuite) TestCategoryDetail_NotFound() {
	suite.categories.EXPECT().GetCategoryBySlug(mock.Anything, "desserts").Return(nil, categoryNotFound())

	recorder := suite.get("/categories/desserts/", 0)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ServerTestSuite) TestCategoryDetail_ListsRecipes() {
	suite.categories.EXPECT().GetCategoryBySlug(mock.Anything, "soups").Return(&model.Category{ID: 3, Name: "Soups", Slug: "soups"}, nil)
	suite.recipes.EXPECT().GetRecipesInCategory(mock.Anything, uint(3)).Return([]*model.Recipe{soup()}, nil)

	recorder := suite.get("/categories/soups/", 0)
	suite.Equal(http.StatusOK, recorder.Code)

	var page server.CategoryPage
	suite.decode(recorder, &page)
	suite.Equal("Soups", page.Category.Name)
	suite.Len(page.Recipes, 1)
}

func (suite *ServerTestSuite) TestServeMedia() {
	suite.store.EXPECT().Open(mock.Anything, "recipe_pics/soup.png").Return(io.NopCloser(strings.NewReader("png")), nil)
	suite.store.EXPECT().Open(mock.Anything, "recipe_pics/gone.png").Return(nil, mediaNotFound())

	recorder := suite.get("/media/recipe_pics/soup.png", 0)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("image/png", recorder.Header().Get("Content-Type"))
	suite.Equal("png", recorder.Body.String())

	recorder = suite.get("/media/recipe_pics/gone.png", 0)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ServerTestSuite) TestMetricsCountRoutes() {
	suite.recipes.EXPECT().ListRecipes(mock.Anything).Return(nil, nil)

	suite.Equal(http.StatusOK, suite.get("/recipes/", 0).Code)

	recorder := suite.get("/metrics", 0)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `recipebook_http_requests_total{method="GET",route="/recipes/",status="200"} 1`)
}

func (suite *ServerTestSuite) TestRequestsAreLogged() {
	suite.recipes.EXPECT().ListRecipes(mock.Anything).Return(nil, nil)

	suite.get("/recipes/", 0)

	logs := suite.observedLogs.FilterMessage("http request").All()
	suite.Require().Len(logs, 1)
	suite.Equal("/recipes/", logs[0].ContextMap()["path"])
	suite.Equal(int64(http.StatusOK), logs[0].ContextMap()["status"])
}
