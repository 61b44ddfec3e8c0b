package recipes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/recipeplanner/internal/models"
)

// ParseIngredient reads one ingredient from text. Accepted forms:
//
//	"2 cups flour"      quantity, unit, name
//	"3 eggs"            quantity, name (no unit)
//	"1.5|tbsp|olive oil" pipe-separated, for names or units containing spaces
//
// In the pipe form the unit and name are taken verbatim; everything after
// the second '|' is the name.
func ParseIngredient(line string) (models.Ingredient, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return models.Ingredient{}, fmt.Errorf("empty ingredient")
	}

	var qtyStr, unit, name string
	if strings.Contains(line, "|") {
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return models.Ingredient{}, fmt.Errorf("invalid ingredient %q (expected quantity|unit|name)", trimmed)
		}
		qtyStr, unit, name = parts[0], parts[1], parts[2]
	} else {
		fields := strings.Fields(trimmed)
		switch {
		case len(fields) < 2:
			return models.Ingredient{}, fmt.Errorf("invalid ingredient %q (expected \"quantity [unit] name\")", trimmed)
		case len(fields) == 2:
			qtyStr, name = fields[0], fields[1]
		default:
			qtyStr, unit, name = fields[0], fields[1], strings.Join(fields[2:], " ")
		}
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("invalid quantity in %q: %w", trimmed, err)
	}
	if math.IsInf(qty, 0) || math.IsNaN(qty) {
		return models.Ingredient{}, fmt.Errorf("invalid quantity in %q: must be a finite number", trimmed)
	}

	return models.Ingredient{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
	}, nil
}

// ParseIngredients parses one ingredient per non-empty line
func ParseIngredients(text string) ([]models.Ingredient, error) {
	var out []models.Ingredient
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ing, err := ParseIngredient(line)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}

// ParseSteps returns one step per non-empty line
func ParseSteps(text string) []string {
	var steps []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}

// FormatIngredient renders an ingredient in the form ParseIngredient reads back
func FormatIngredient(ing models.Ingredient) string {
	qty := FormatQuantity(ing.Quantity)
	if strings.ContainsAny(ing.Unit, " \t|") || !singleSpaced(ing.Name) ||
		(ing.Unit == "" && strings.Contains(ing.Name, " ")) {
		return qty + "|" + ing.Unit + "|" + ing.Name
	}
	if ing.Unit == "" {
		return qty + " " + ing.Name
	}
	return qty + " " + ing.Unit + " " + ing.Name
}

// singleSpaced reports whether name survives strings.Fields unchanged
func singleSpaced(name string) bool {
	return name != "" && !strings.Contains(name, "|") && strings.Join(strings.Fields(name), " ") == name
}

func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
