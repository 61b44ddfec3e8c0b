package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/recipeplanner/internal/models"
)

func resolverFor(recipes ...models.Recipe) Resolver {
	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	return func(id string) (models.Recipe, bool) {
		r, ok := byID[id]
		return r, ok
	}
}

func TestSlotsOrder(t *testing.T) {
	slots := Slots()
	require.Len(t, slots, 21)
	assert.Equal(t, SlotRef{models.Monday, models.MealBreakfast}, slots[0])
	assert.Equal(t, SlotRef{models.Monday, models.MealLunch}, slots[1])
	assert.Equal(t, SlotRef{models.Tuesday, models.MealBreakfast}, slots[3])
	assert.Equal(t, SlotRef{models.Sunday, models.MealDinner}, slots[20])
}

func TestAssignDoesNotMutateInput(t *testing.T) {
	plan := models.NewMealPlan("p1", "2026-10-12T00:00:00Z")

	next, err := Assign(plan, models.Wednesday, models.MealLunch, "r1")
	require.NoError(t, err)

	assert.Equal(t, "r1", next.Slot(models.Wednesday, models.MealLunch))
	assert.Equal(t, "", plan.Slot(models.Wednesday, models.MealLunch))
	assert.Equal(t, plan.ID, next.ID)
	assert.Equal(t, plan.WeekStartDate, next.WeekStartDate)
}

func TestAssignOverwritesAndAcceptsUnknownIDs(t *testing.T) {
	plan := models.NewMealPlan("p1", "")
	plan, err := Assign(plan, models.Friday, models.MealDinner, "a")
	require.NoError(t, err)
	plan, err = Assign(plan, models.Friday, models.MealDinner, "does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, "does-not-exist", plan.Slot(models.Friday, models.MealDinner))
}

func TestAssignCreatesMissingDay(t *testing.T) {
	plan := models.MealPlan{ID: "p", Meals: map[models.DayOfWeek]models.DayMeals{}}
	next, err := Assign(plan, models.Sunday, models.MealBreakfast, "r")
	require.NoError(t, err)
	assert.Equal(t, "r", next.Slot(models.Sunday, models.MealBreakfast))
	assert.Empty(t, plan.Meals)
}

func TestAssignRejectsUnknownSlot(t *testing.T) {
	plan := models.NewMealPlan("p", "")
	_, err := Assign(plan, models.DayOfWeek("Funday"), models.MealLunch, "r")
	assert.ErrorIs(t, err, ErrUnknownSlot)
	_, err = Assign(plan, models.Monday, models.MealType("brunch"), "r")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestClear(t *testing.T) {
	plan, err := Assign(models.NewMealPlan("p", ""), models.Monday, models.MealDinner, "r")
	require.NoError(t, err)
	plan, err = Clear(plan, models.Monday, models.MealDinner)
	require.NoError(t, err)
	assert.Equal(t, "", plan.Slot(models.Monday, models.MealDinner))
	assert.Equal(t, 0, AssignedCount(plan))
}

func TestAggregateMergeRules(t *testing.T) {
	a := models.Recipe{ID: "A", Ingredients: []models.Ingredient{
		{Name: "flour", Quantity: 2, Unit: "cups"},
		{Name: "salt", Quantity: 1, Unit: "tsp"},
	}}
	b := models.Recipe{ID: "B", Ingredients: []models.Ingredient{
		{Name: "flour", Quantity: 3, Unit: "cups"},
		{Name: "salt", Quantity: 1, Unit: "tbsp"},
	}}
	plan := models.NewMealPlan("p", "")
	plan, _ = Assign(plan, models.Monday, models.MealBreakfast, "A")
	plan, _ = Assign(plan, models.Monday, models.MealLunch, "B")

	list := Aggregate(plan, resolverFor(a, b))

	assert.Equal(t, []string{"flour", "salt", "salt (tbsp)"}, list.Keys())
	flour, _ := list.Get("flour")
	assert.Equal(t, 5.0, flour.Quantity)
	assert.Equal(t, "cups", flour.Unit)
	salt, _ := list.Get("salt")
	assert.Equal(t, 1.0, salt.Quantity)
	assert.Equal(t, "tsp", salt.Unit)
	tbsp, _ := list.Get("salt (tbsp)")
	assert.Equal(t, 1.0, tbsp.Quantity)
	assert.Equal(t, "tbsp", tbsp.Unit)
}

func TestAggregateDifferentUnitOverwritesSuffixedEntry(t *testing.T) {
	a := models.Recipe{ID: "A", Ingredients: []models.Ingredient{{Name: "milk", Quantity: 1, Unit: "cup"}}}
	b := models.Recipe{ID: "B", Ingredients: []models.Ingredient{{Name: "milk", Quantity: 2, Unit: "ml"}}}
	c := models.Recipe{ID: "C", Ingredients: []models.Ingredient{{Name: "milk", Quantity: 5, Unit: "ml"}}}
	plan := models.NewMealPlan("p", "")
	plan, _ = Assign(plan, models.Monday, models.MealBreakfast, "A")
	plan, _ = Assign(plan, models.Monday, models.MealLunch, "B")
	plan, _ = Assign(plan, models.Monday, models.MealDinner, "C")

	list := Aggregate(plan, resolverFor(a, b, c))

	require.Equal(t, 2, list.Len())
	ml, _ := list.Get("milk (ml)")
	assert.Equal(t, 5.0, ml.Quantity)
}

func TestAggregateCountsRepeatedRecipe(t *testing.T) {
	r := models.Recipe{ID: "R", Ingredients: []models.Ingredient{{Name: "eggs", Quantity: 2}}}
	plan := models.NewMealPlan("p", "")
	plan, _ = Assign(plan, models.Monday, models.MealBreakfast, "R")
	plan, _ = Assign(plan, models.Tuesday, models.MealBreakfast, "R")

	eggs, ok := Aggregate(plan, resolverFor(r)).Get("eggs")
	require.True(t, ok)
	assert.Equal(t, 4.0, eggs.Quantity)
}

func TestAggregateSkipsDanglingIDs(t *testing.T) {
	r := models.Recipe{ID: "R", Ingredients: []models.Ingredient{{Name: "rice", Quantity: 1, Unit: "cup"}}}
	plan := models.NewMealPlan("p", "")
	plan, _ = Assign(plan, models.Monday, models.MealDinner, "gone")
	plan, _ = Assign(plan, models.Tuesday, models.MealDinner, "R")

	list := Aggregate(plan, resolverFor(r))
	assert.Equal(t, []string{"rice"}, list.Keys())
	assert.Equal(t, []SlotRef{{models.Monday, models.MealDinner}}, DanglingSlots(plan, resolverFor(r)))
}

func TestAggregateEmptyPlan(t *testing.T) {
	list := Aggregate(models.NewMealPlan("p", ""), resolverFor())
	assert.Equal(t, 0, list.Len())
}

func TestAggregateIsPure(t *testing.T) {
	r := models.Recipe{ID: "R", Ingredients: []models.Ingredient{{Name: "oats", Quantity: 1, Unit: "cup"}}}
	plan, _ := Assign(models.NewMealPlan("p", ""), models.Monday, models.MealBreakfast, "R")
	before := plan.Clone()

	first := Aggregate(plan, resolverFor(r))
	second := Aggregate(plan, resolverFor(r))

	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, before, plan)
	assert.Equal(t, 1.0, r.Ingredients[0].Quantity)
}
