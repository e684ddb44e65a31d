package schemaorg

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// recipeJSON is the subset of https://schema.org/Recipe that is imported.
type recipeJSON struct {
	Type         typeList `json:"@type"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  textList `json:"recipeIngredient"`
	Instructions textList `json:"recipeInstructions"`
	Yield        textList `json:"recipeYield"`
	Category     textList `json:"recipeCategory"`
	TotalTime    string   `json:"totalTime"`
	CookTime     string   `json:"cookTime"`
}

type typeList []string

func (t *typeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = typeList{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*t = many

	return nil
}

func (t typeList) is(name string) bool {
	for _, value := range t {
		if strings.EqualFold(value, name) {
			return true
		}
	}

	return false
}

// textList accepts a string, a number, a list of those, or a list of
// HowToStep/HowToSection objects.
type textList []string

type textObject struct {
	Text     string   `json:"text"`
	Name     string   `json:"name"`
	Elements textList `json:"itemListElement"`
}

func (t *textList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = nil
	case data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*t = textList{value}
	case data[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}

		var result textList

		for _, item := range items {
			var nested textList
			if err := nested.UnmarshalJSON(item); err != nil {
				return err
			}

			result = append(result, nested...)
		}

		*t = result
	case data[0] == '{':
		var object textObject
		if err := json.Unmarshal(data, &object); err != nil {
			return err
		}

		switch {
		case len(object.Elements) > 0:
			*t = object.Elements
		case object.Text != "":
			*t = textList{object.Text}
		case object.Name != "":
			*t = textList{object.Name}
		}
	default:
		*t = textList{string(data)}
	}

	return nil
}

// findRecipe walks a JSON-LD document (object, array or @graph) and returns
// the first Recipe node.
func findRecipe(data []byte) (*recipeJSON, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var nodes []json.RawMessage
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, err
		}

		for _, node := range nodes {
			recipe, err := findRecipe(node)
			if err != nil || recipe != nil {
				return recipe, err
			}
		}

		return nil, nil
	}

	var node struct {
		Type  typeList        `json:"@type"`
		Graph json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	if node.Type.is("Recipe") {
		var recipe recipeJSON
		if err := json.Unmarshal(data, &recipe); err != nil {
			return nil, err
		}

		return &recipe, nil
	}

	if len(node.Graph) > 0 {
		return findRecipe(node.Graph)
	}

	return nil, nil
}

var (
	durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	firstNumber     = regexp.MustCompile(`\d+`)
)

// parseDuration reads ISO 8601 durations of the form used by schema.org,
// such as PT1H30M or P1DT2H.
func parseDuration(value string) (time.Duration, bool) {
	matches := durationPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if matches == nil || value == "P" {
		return 0, false
	}

	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute}

	var total time.Duration

	for i, unit := range units {
		if matches[i+1] == "" {
			continue
		}

		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return 0, false
		}

		total += time.Duration(n) * unit
	}

	if matches[4] != "" {
		seconds, err := strconv.ParseFloat(matches[4], 64)
		if err != nil {
			return 0, false
		}

		total += time.Duration(seconds * float64(time.Second))
	}

	return total, true
}

func parseYield(values textList) (int, bool) {
	for _, value := range values {
		if match := firstNumber.FindString(value); match != "" {
			n, err := strconv.Atoi(match)
			if err == nil && n > 0 {
				return n, true
			}
		}
	}

	return 0, false
}
