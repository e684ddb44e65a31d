package server

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.openly.dev/pointy"

	"droscher.com/RecipeBook/pkg/model"
)

const multipartMemory = 1 << 20

type RecipeForm struct {
	Title       string `form:"title"        json:"title"        validate:"required,max=100"`
	Description string `form:"description"  json:"description"  validate:"required"`
	Content     string `form:"content"      json:"content"      validate:"required"`
	Difficulty  int    `form:"difficulty"   json:"difficulty"   validate:"required,min=1,max=5"`
	Portions    int    `form:"portions"     json:"portions"     validate:"required,min=1"`
	CookingTime int    `form:"cooking_time" json:"cooking_time" validate:"required,min=1"`
	Categories  []uint `form:"category"     json:"category"     validate:"required,min=1"`
}

type IngredientForm struct {
	Name     string `form:"name"     json:"name"     validate:"required,max=250"`
	Quantity string `form:"quantity" json:"quantity" validate:"max=250"`
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})

	return validate
}

// parseForm reads an urlencoded or multipart body no larger than the upload
// limit.
func (s *RecipeServer) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(multipartMemory)
	}

	return r.ParseForm()
}

func (s *RecipeServer) check(form any, fields map[string]string) map[string]string {
	err := s.validate.Struct(form)
	if err == nil {
		return fields
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["__all__"] = err.Error()

		return fields
	}

	for _, fieldError := range validationErrors {
		if _, found := fields[fieldError.Field()]; !found {
			fields[fieldError.Field()] = fieldMessage(fieldError)
		}
	}

	return fields
}

func fieldMessage(fieldError validator.FieldError) string {
	isText := fieldError.Kind() == reflect.String

	switch fieldError.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if isText {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fieldError.Param())
		}

		return "Ensure this value is less than or equal to " + fieldError.Param() + "."
	case "min":
		if isText {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fieldError.Param())
		}

		return "Ensure this value is greater than or equal to " + fieldError.Param() + "."
	default:
		return "Enter a valid value."
	}
}

func (s *RecipeServer) recipeForm(r *http.Request) (*RecipeForm, map[string]string) {
	fields := map[string]string{}
	values := r.PostForm

	form := RecipeForm{
		Title:       strings.TrimSpace(values.Get("title")),
		Description: strings.TrimSpace(values.Get("description")),
		Content:     strings.TrimSpace(values.Get("content")),
		Difficulty:  formInt(values.Get("difficulty"), "difficulty", fields),
		Portions:    formInt(values.Get("portions"), "portions", fields),
		CookingTime: formInt(values.Get("cooking_time"), "cooking_time", fields),
	}

	for _, value := range values["category"] {
		categoryID, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil || categoryID == 0 {
			fields["category"] = "Select a valid choice."

			continue
		}

		form.Categories = append(form.Categories, uint(categoryID))
	}

	return &form, s.check(form, fields)
}

func formInt(value string, name string, fields map[string]string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		fields[name] = "Enter a whole number."

		return 0
	}

	return number
}

func (f *RecipeForm) apply(recipe *model.Recipe) {
	recipe.Title = f.Title
	recipe.Description = f.Description
	recipe.Content = f.Content
	recipe.Difficulty = model.Difficulty(f.Difficulty)
	recipe.Portions = f.Portions
	recipe.CookingTime = f.CookingTime
}

func formFromRecipe(recipe *model.Recipe) *RecipeForm {
	form := RecipeForm{
		Title:       recipe.Title,
		Description: recipe.Description,
		Content:     recipe.Content,
		Difficulty:  int(recipe.Difficulty),
		Portions:    recipe.Portions,
		CookingTime: recipe.CookingTime,
		Categories:  make([]uint, 0, len(recipe.Categories)),
	}

	for _, category := range recipe.Categories {
		form.Categories = append(form.Categories, category.ID)
	}

	return &form
}

func (s *RecipeServer) ingredientForm(r *http.Request) (*IngredientForm, map[string]string) {
	form := IngredientForm{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Quantity: strings.TrimSpace(r.PostForm.Get("quantity")),
	}

	return &form, s.check(form, map[string]string{})
}

func (f *IngredientForm) quantity() *string {
	if f.Quantity == "" {
		return nil
	}

	return pointy.String(f.Quantity)
}

const msgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

// imageError checks that an uploaded image decodes, returning the field
// message when it does not.
func imageError(r *http.Request) (string, error) {
	file, _, err := formImage(r)
	if err != nil || file == nil {
		return "", err
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return msgInvalidImage, nil
	}

	return "", nil
}

// formImage returns the uploaded image, or nil when none was sent.
func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}

	return file, header, err
}
