package recipes

import (
	"slices"

	"github.com/google/uuid"

	"github.com/julianstephens/recipeplanner/internal/models"
)

// Repository owns the recipe collection in insertion order. It does not
// enforce the duplicate rule; callers check IsDuplicate before Add.
type Repository struct {
	recipes []models.Recipe
	newID   func() string
}

// New creates a repository seeded with the given recipes
func New(initial []models.Recipe) *Repository {
	return NewWithIDs(initial, func() string { return uuid.New().String() })
}

// NewWithIDs is New with a custom id generator
func NewWithIDs(initial []models.Recipe, newID func() string) *Repository {
	r := &Repository{newID: newID}
	r.Replace(initial)
	return r
}

// Add stores a draft under a freshly generated id and returns the stored recipe
func (r *Repository) Add(draft models.RecipeDraft) models.Recipe {
	recipe := draft.WithID(r.newID())
	r.recipes = append(r.recipes, recipe)
	return recipe.Clone()
}

// Edit replaces the recipe with the same id. It reports false and leaves the
// collection untouched when no recipe matches.
func (r *Repository) Edit(recipe models.Recipe) bool {
	i := r.indexOf(recipe.ID)
	if i < 0 {
		return false
	}
	r.recipes[i] = recipe.Clone()
	return true
}

// Delete removes the recipe with the given id; absent ids are ignored
func (r *Repository) Delete(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.recipes = slices.Delete(r.recipes, i, i+1)
	return true
}

// All returns a snapshot of every recipe in insertion order
func (r *Repository) All() []models.Recipe {
	out := make([]models.Recipe, len(r.recipes))
	for i, rec := range r.recipes {
		out[i] = rec.Clone()
	}
	return out
}

// Resolve looks up a recipe by id. Meal plan slots hold ids only, so a
// missing recipe is an ordinary outcome rather than an error.
func (r *Repository) Resolve(id string) (models.Recipe, bool) {
	if id == "" {
		return models.Recipe{}, false
	}
	i := r.indexOf(id)
	if i < 0 {
		return models.Recipe{}, false
	}
	return r.recipes[i].Clone(), true
}

// Replace swaps the whole collection, as an import does
func (r *Repository) Replace(all []models.Recipe) {
	r.recipes = make([]models.Recipe, len(all))
	for i, rec := range all {
		r.recipes[i] = rec.Clone()
	}
}

func (r *Repository) Len() int {
	return len(r.recipes)
}

func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.recipes, func(rec models.Recipe) bool { return rec.ID == id })
}
