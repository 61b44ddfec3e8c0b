// Package mealplan holds the pure operations over a weekly meal plan: slot
// assignment and shopping list aggregation.
package mealplan

import (
	"errors"
	"fmt"

	"github.com/julianstephens/recipeplanner/internal/models"
)

var ErrUnknownSlot = errors.New("unknown meal slot")

// SlotRef addresses one (day, meal) cell of the week grid
type SlotRef struct {
	Day  models.DayOfWeek
	Meal models.MealType
}

func (s SlotRef) String() string {
	return fmt.Sprintf("%s %s", s.Day, s.Meal)
}

// Slots returns every cell of the week in traversal order: days Monday
// through Sunday, meals breakfast, lunch, dinner within each day.
func Slots() []SlotRef {
	out := make([]SlotRef, 0, 21)
	for _, d := range models.Week() {
		for _, m := range models.MealTypes() {
			out = append(out, SlotRef{Day: d, Meal: m})
		}
	}
	return out
}

func validSlot(day models.DayOfWeek, meal models.MealType) error {
	if _, err := models.ParseDayOfWeek(string(day)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownSlot, err)
	}
	if _, err := models.ParseMealType(string(meal)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownSlot, err)
	}
	return nil
}

// Assign returns a copy of plan with recipeID in the (day, meal) slot. The
// id is not checked against the recipe collection; an empty id clears the
// slot. Days absent from the plan are created.
func Assign(plan models.MealPlan, day models.DayOfWeek, meal models.MealType, recipeID string) (models.MealPlan, error) {
	if err := validSlot(day, meal); err != nil {
		return plan, err
	}
	out := plan.Clone()
	dm := out.Meals[day]
	dm.SetSlot(meal, recipeID)
	out.Meals[day] = dm
	return out, nil
}

// Clear empties the (day, meal) slot
func Clear(plan models.MealPlan, day models.DayOfWeek, meal models.MealType) (models.MealPlan, error) {
	return Assign(plan, day, meal, "")
}

// Resolver looks a recipe up by id
type Resolver func(id string) (models.Recipe, bool)

// Aggregate builds the shopping list for a plan. Slots are visited in Slots
// order; empty slots and ids the resolver does not know are skipped.
//
// Each ingredient is keyed by its exact name. A name seen for the first time
// creates an entry. When the entry's unit matches, the quantities are summed.
// When the unit differs, the ingredient is stored under "name (unit)" with
// its own quantity and unit, replacing anything already under that key.
func Aggregate(plan models.MealPlan, resolve Resolver) *models.ShoppingList {
	list := models.NewShoppingList()
	for _, s := range Slots() {
		id := plan.Slot(s.Day, s.Meal)
		if id == "" {
			continue
		}
		recipe, ok := resolve(id)
		if !ok {
			continue
		}
		for _, ing := range recipe.Ingredients {
			merge(list, ing)
		}
	}
	return list
}

func merge(list *models.ShoppingList, ing models.Ingredient) {
	existing, ok := list.Get(ing.Name)
	switch {
	case !ok:
		list.Set(models.ShoppingItem{Key: ing.Name, Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	case existing.Unit == ing.Unit:
		existing.Quantity += ing.Quantity
		list.Set(existing)
	default:
		key := fmt.Sprintf("%s (%s)", ing.Name, ing.Unit)
		list.Set(models.ShoppingItem{Key: key, Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}
}

// DanglingSlots lists the assigned slots whose recipe id no longer resolves
func DanglingSlots(plan models.MealPlan, resolve Resolver) []SlotRef {
	var out []SlotRef
	for _, s := range Slots() {
		id := plan.Slot(s.Day, s.Meal)
		if id == "" {
			continue
		}
		if _, ok := resolve(id); !ok {
			out = append(out, s)
		}
	}
	return out
}

// AssignedCount returns the number of non-empty slots
func AssignedCount(plan models.MealPlan) int {
	n := 0
	for _, s := range Slots() {
		if plan.Slot(s.Day, s.Meal) != "" {
			n++
		}
	}
	return n
}
