package recipes

import (
	"slices"
	"strings"

	"github.com/julianstephens/recipeplanner/internal/models"
)

// IsDuplicate reports whether an existing recipe has the candidate's name
// (case-insensitive) and exactly the same ingredient sequence.
func IsDuplicate(existing []models.Recipe, candidate models.RecipeDraft) bool {
	for _, r := range existing {
		if sameRecipe(r.Name, r.Ingredients, candidate.Name, candidate.Ingredients) {
			return true
		}
	}
	return false
}

// DuplicatePair names two stored recipes that break the duplicate rule
type DuplicatePair struct {
	First  models.Recipe
	Second models.Recipe
}

// FindDuplicates lists stored recipes that violate the duplicate rule. Only
// creation is checked, so imports and edits can introduce these.
func FindDuplicates(all []models.Recipe) []DuplicatePair {
	var pairs []DuplicatePair
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if sameRecipe(all[i].Name, all[i].Ingredients, all[j].Name, all[j].Ingredients) {
				pairs = append(pairs, DuplicatePair{First: all[i], Second: all[j]})
			}
		}
	}
	return pairs
}

func sameRecipe(nameA string, ingA []models.Ingredient, nameB string, ingB []models.Ingredient) bool {
	if !strings.EqualFold(nameA, nameB) {
		return false
	}
	return slices.EqualFunc(ingA, ingB, models.Ingredient.Equal)
}
