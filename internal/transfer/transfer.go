// Package transfer reads and writes the portable export document:
// {"recipes": [...], "mealPlan": {...}}.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/models"
)

const DefaultFilename = constants.ExportFilename

var ErrMalformed = errors.New("malformed import file")

type Document struct {
	Recipes  []models.Recipe  `json:"recipes"`
	MealPlan *models.MealPlan `json:"mealPlan"`
}

// Payload is what an import file asks to replace. A nil field means the file
// did not carry that collection and the current one must be kept.
type Payload struct {
	Recipes  []models.Recipe
	MealPlan *models.MealPlan
}

func (p Payload) HasRecipes() bool {
	return p.Recipes != nil
}

func (p Payload) Empty() bool {
	return p.Recipes == nil && p.MealPlan == nil
}

// Encode writes the full state as 2-space indented JSON
func Encode(w io.Writer, recipes []models.Recipe, plan models.MealPlan) error {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	data, err := json.MarshalIndent(Document{Recipes: recipes, MealPlan: &plan}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Decode parses an import file. The whole file is checked before anything is
// returned, so a malformed file never yields a partial payload.
func Decode(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read import file: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return Payload{}, malformed("top level must be a JSON object")
	}

	var p Payload
	if raw, ok := present(top, "recipes"); ok {
		if kind(raw) != '[' {
			return Payload{}, malformed("recipes must be an array")
		}
		var recipes []models.Recipe
		if err := json.Unmarshal(raw, &recipes); err != nil {
			return Payload{}, malformed("recipes: %v", err)
		}
		p.Recipes = make([]models.Recipe, len(recipes))
		for i, r := range recipes {
			p.Recipes[i] = r.Clone()
		}
	}

	if raw, ok := present(top, "mealPlan"); ok {
		if kind(raw) != '{' {
			return Payload{}, malformed("mealPlan must be an object")
		}
		var plan models.MealPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return Payload{}, malformed("mealPlan: %v", err)
		}
		plan = plan.Clone()
		p.MealPlan = &plan
	}

	return p, nil
}

// present treats an explicit null the same as a missing key
func present(top map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := top[key]
	if !ok || kind(raw) == 'n' {
		return nil, false
	}
	return raw, true
}

func kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
