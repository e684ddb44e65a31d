package schemaorg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/model"
)

var ErrNoRecipe = errors.New("no schema.org recipe found")

const (
	defaultPortions    = 1
	defaultCookingTime = 1
)

// FindRecipe scrapes the page and converts its first schema.org Recipe into
// an unsaved recipe with ingredients. Category names are returned in
// Categories without ids.
func (s *SchemaOrgIntegration) FindRecipe(pageURL string) (*model.Recipe, error) {
	collector := colly.NewCollector(colly.UserAgent(userAgent))

	var (
		errs  error
		found *recipeJSON
	)

	collector.OnHTML(`script[type="application/ld+json"]`, func(element *colly.HTMLElement) {
		if found != nil {
			return
		}

		recipe, err := findRecipe([]byte(element.Text))
		if multierr.AppendInto(&errs, err) {
			s.logger.Warn("failed to decode json-ld block", zap.String("url", pageURL), zap.Error(err))

			return
		}

		found = recipe
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("error while scraping recipe", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	s.logger.Info("scraping recipe page", zap.String("url", pageURL))

	if err := collector.Visit(pageURL); err != nil {
		return nil, err
	}

	if found == nil {
		return nil, multierr.Append(fmt.Errorf("%w: %s", ErrNoRecipe, pageURL), errs)
	}

	recipe := toModel(found)

	s.logger.Info("finished scraping recipe", zap.String("title", recipe.Title), zap.Int("ingredients", len(recipe.Ingredients)))

	return recipe, nil
}

func toModel(scraped *recipeJSON) *model.Recipe {
	recipe := model.Recipe{
		Title:       strings.TrimSpace(scraped.Name),
		Description: strings.TrimSpace(scraped.Description),
		Content:     strings.Join(trimAll(scraped.Instructions), "\n\n"),
		Image:       model.DefaultImage,
		Difficulty:  model.Medium,
		Portions:    defaultPortions,
		CookingTime: defaultCookingTime,
	}

	if portions, ok := parseYield(scraped.Yield); ok {
		recipe.Portions = portions
	}

	for _, value := range []string{scraped.TotalTime, scraped.CookTime} {
		if duration, ok := parseDuration(value); ok && duration > 0 {
			recipe.CookingTime = int(math.Ceil(duration.Minutes()))

			break
		}
	}

	for _, line := range trimAll(scraped.Ingredients) {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{Name: truncate(line, 250)})
	}

	for _, name := range trimAll(scraped.Category) {
		recipe.Categories = append(recipe.Categories, model.Category{Name: name})
	}

	recipe.Title = truncate(recipe.Title, 100)

	return &recipe
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	return string(runes[:limit])
}
