package server_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"github.com/stretchr/testify/mock"

	"droscher.com/RecipeBook/pkg/model"
	"droscher.com/RecipeBook/pkg/server"
)

func pngBytes(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)

	return buf.Bytes()
}

func multipartRecipe(upload []byte) (*bytes.Buffer, string) {
	return multipartRecipeFile("soup.png", upload)
}

func multipartRecipeFile(filename string, upload []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, values := range validRecipeValues() {
		for _, value := range values {
			_ = writer.WriteField(name, value)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", "image/png")

	part, _ := writer.CreatePart(header)
	_, _ = part.Write(upload)
	_ = writer.Close()

	return body, writer.FormDataContentType()
}

func isUploadKey(key string) bool {
	return strings.HasPrefix(key, "recipe_pics/") && strings.HasSuffix(key, ".png")
}

func (suite *ServerTestSuite) TestCreateRecipe_StoresAndShrinksUpload() {
	saved := map[string][]byte{}
	save := func(_ context.Context, key string, body io.Reader, _ string) error {
		data, err := io.ReadAll(body)
		saved[key] = data

		return err
	}

	suite.categories.EXPECT().GetCategoriesByIDs(mock.Anything, []uint{3}).Return([]*model.Category{{ID: 3}}, nil)
	suite.store.EXPECT().Save(mock.Anything, mock.MatchedBy(isUploadKey), mock.Anything, "image/png").RunAndReturn(save).Twice()
	suite.store.EXPECT().Open(mock.Anything, mock.MatchedBy(isUploadKey)).
		RunAndReturn(func(_ context.Context, key string) (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(saved[key])), nil
		})
	suite.recipes.EXPECT().CreateRecipe(mock.Anything, mock.MatchedBy(func(recipe *model.Recipe) bool {
		return isUploadKey(recipe.Image)
	}), []uint{3}).RunAndReturn(func(_ context.Context, recipe *model.Recipe, _ []uint) (*model.Recipe, error) {
		recipe.ID = 13
		recipe.Slug = "tomato-soup"

		return recipe, nil
	})

	body, contentType := multipartRecipe(pngBytes(600, 400))
	request := httptest.NewRequest(http.MethodPost, "/recipes/create/", body)
	request.Header.Set("Content-Type", contentType)

	recorder := suite.do(request, 1)
	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/recipes/create/ingredients/13", recorder.Header().Get("Location"))

	suite.Require().Len(saved, 1)

	for _, data := range saved {
		config, format, err := image.DecodeConfig(bytes.NewReader(data))
		suite.Require().NoError(err)
		suite.Equal("png", format)
		suite.Equal(300, config.Width)
		suite.Equal(200, config.Height)
	}
}

func (suite *ServerTestSuite) TestCreateRecipe_RejectsOversizedBody() {
	body, contentType := multipartRecipe(bytes.Repeat([]byte{1}, 3<<20))
	request := httptest.NewRequest(http.MethodPost, "/recipes/create/", body)
	request.Header.Set("Content-Type", contentType)

	recorder := suite.do(request, 1)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ServerTestSuite) TestCreateRecipe_RejectsNonImageUpload() {
	body, contentType := multipartRecipeFile("notes.png", []byte("this is not an image"))
	request := httptest.NewRequest(http.MethodPost, "/recipes/create/", body)
	request.Header.Set("Content-Type", contentType)

	recorder := suite.do(request, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Equal("validation failed", response.Error)
	suite.Contains(response.Fields["image"], "Upload a valid image.")
}

func (suite *ServerTestSuite) TestUpdateRecipe_RejectsNonImageUpload() {
	suite.recipes.EXPECT().GetRecipeBySlug(mock.Anything, "soup").Return(soup(), nil)

	body, contentType := multipartRecipeFile("notes.png", []byte("this is not an image"))
	request := httptest.NewRequest(http.MethodPost, "/recipes/soup/edit/", body)
	request.Header.Set("Content-Type", contentType)

	recorder := suite.do(request, 1)
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)

	var response server.ErrorResponse
	suite.decode(recorder, &response)
	suite.Contains(response.Fields["image"], "Upload a valid image.")
}
