// Package search filters the recipe collection for list views and planner
// selectors. Every function here is pure and keeps the input order.
package search

import (
	"strings"

	"github.com/julianstephens/recipeplanner/internal/models"
)

// AllCategories is the category sentinel that matches every recipe
const AllCategories = "All"

// Query combines the three recipe predicates. A zero Query matches everything.
type Query struct {
	Term     string
	Category string
	Tags     []models.DietaryTag
}

// Filter returns the recipes matching every predicate of q
func Filter(recipes []models.Recipe, q Query) []models.Recipe {
	term := strings.ToLower(q.Term)
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matchesTerm(r, term) && matchesCategory(r, q.Category) && r.HasAllTags(q.Tags) {
			out = append(out, r)
		}
	}
	return out
}

// ForMealType returns the recipes offered for a planner slot: those whose
// category name equals the meal type. Snack and Dessert recipes never match.
func ForMealType(recipes []models.Recipe, meal models.MealType) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.ToLower(string(r.Category)) == string(meal) {
			out = append(out, r)
		}
	}
	return out
}

func matchesTerm(r models.Recipe, term string) bool {
	if term == "" || strings.Contains(strings.ToLower(r.Name), term) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), term) {
			return true
		}
	}
	return false
}

func matchesCategory(r models.Recipe, category string) bool {
	return category == "" || category == AllCategories || string(r.Category) == category
}
