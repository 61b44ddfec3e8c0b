package planner

import (
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/recipes"
	"github.com/julianstephens/recipeplanner/internal/search"
)

// AddRecipe validates draft, rejects duplicates and stores it under a new id
func (s *Session) AddRecipe(draft models.RecipeDraft) (models.Recipe, error) {
	draft.DietaryTags = models.NormalizeTags(draft.DietaryTags)
	if err := s.validator.ValidateDraft(draft, s.repo.All()); err != nil {
		return models.Recipe{}, err
	}
	recipe := s.repo.Add(draft)
	logger.Info("Recipe added", "id", recipe.ID, "name", recipe.Name)
	return recipe, s.persistRecipes()
}

// EditRecipe replaces the recipe with the same id. Unknown ids report false
// and change nothing.
func (s *Session) EditRecipe(recipe models.Recipe) (bool, error) {
	recipe.DietaryTags = models.NormalizeTags(recipe.DietaryTags)
	if err := s.validator.ValidateRecipe(recipe); err != nil {
		return false, err
	}
	if !s.repo.Edit(recipe) {
		logger.Debug("Edit ignored for unknown recipe", "id", recipe.ID)
		return false, nil
	}
	logger.Info("Recipe edited", "id", recipe.ID)
	return true, s.persistRecipes()
}

// DeleteRecipe removes a recipe. Plan slots that reference it are left in
// place and resolve to nothing from then on.
func (s *Session) DeleteRecipe(id string) (bool, error) {
	if !s.repo.Delete(id) {
		logger.Debug("Delete ignored for unknown recipe", "id", id)
		return false, nil
	}
	logger.Info("Recipe deleted", "id", id)
	return true, s.persistRecipes()
}

func (s *Session) Recipes() []models.Recipe {
	return s.repo.All()
}

func (s *Session) Recipe(id string) (models.Recipe, bool) {
	return s.repo.Resolve(id)
}

func (s *Session) Search(q search.Query) []models.Recipe {
	return search.Filter(s.repo.All(), q)
}

// Duplicates lists stored recipe pairs that share a name and ingredients
func (s *Session) Duplicates() []recipes.DuplicatePair {
	return recipes.FindDuplicates(s.repo.All())
}
