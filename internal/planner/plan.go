package planner

import (
	"errors"
	"io"

	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/mealplan"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/search"
	"github.com/julianstephens/recipeplanner/internal/transfer"
)

func (s *Session) Plan() models.MealPlan {
	return s.plan.Clone()
}

// Assign puts recipeID in a slot. The id is stored as given; the planner
// selectors only ever offer existing recipes.
func (s *Session) Assign(day models.DayOfWeek, meal models.MealType, recipeID string) error {
	next, err := mealplan.Assign(s.plan, day, meal, recipeID)
	if err != nil {
		return err
	}
	s.plan = next
	logger.Debug("Slot assigned", "day", day, "meal", meal, "recipe", recipeID)
	return s.persistPlan()
}

func (s *Session) ClearSlot(day models.DayOfWeek, meal models.MealType) error {
	next, err := mealplan.Clear(s.plan, day, meal)
	if err != nil {
		return err
	}
	s.plan = next
	return s.persistPlan()
}

// ResetPlan starts a new, empty week
func (s *Session) ResetPlan() (models.MealPlan, error) {
	s.plan = s.freshPlan()
	logger.Info("Meal plan reset", "id", s.plan.ID)
	return s.plan.Clone(), s.persistPlan()
}

func (s *Session) ShoppingList() *models.ShoppingList {
	return mealplan.Aggregate(s.plan, s.repo.Resolve)
}

// PlannerChoices returns the recipes a slot selector offers for meal
func (s *Session) PlannerChoices(meal models.MealType) []models.Recipe {
	return search.ForMealType(s.repo.All(), meal)
}

func (s *Session) DanglingSlots() []mealplan.SlotRef {
	return mealplan.DanglingSlots(s.plan, s.repo.Resolve)
}

func (s *Session) Export(w io.Writer) error {
	return transfer.Encode(w, s.repo.All(), s.plan)
}

// ImportResult says which collections an import replaced
type ImportResult struct {
	Recipes         int
	RecipesReplaced bool
	PlanReplaced    bool
}

// Import replaces recipes and/or the plan with the contents of r. A
// malformed file changes nothing.
func (s *Session) Import(r io.Reader) (ImportResult, error) {
	payload, err := transfer.Decode(r)
	if err != nil {
		return ImportResult{}, err
	}
	if payload.Empty() {
		return ImportResult{}, nil
	}
	if s.beforeImport != nil {
		s.beforeImport()
	}

	var res ImportResult
	if payload.HasRecipes() {
		s.repo.Replace(payload.Recipes)
		res.RecipesReplaced = true
	}
	if payload.MealPlan != nil {
		s.plan = payload.MealPlan.Clone()
		res.PlanReplaced = true
	}
	res.Recipes = s.repo.Len()
	logger.Info("Import applied", "recipes", res.RecipesReplaced, "plan", res.PlanReplaced)

	var errs []error
	if res.RecipesReplaced {
		errs = append(errs, s.persistRecipes())
	}
	if res.PlanReplaced {
		errs = append(errs, s.persistPlan())
	}
	return res, errors.Join(errs...)
}
