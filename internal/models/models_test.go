package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("dinner")
	require.NoError(t, err)
	assert.Equal(t, CategoryDinner, c)

	_, err = ParseCategory("Brunch")
	assert.Error(t, err)
}

func TestParseDietaryTag(t *testing.T) {
	tag, err := ParseDietaryTag("gluten-free")
	require.NoError(t, err)
	assert.Equal(t, TagGlutenFree, tag)

	_, err = ParseDietaryTag("Carnivore")
	assert.Error(t, err)
}

func TestNormalizeTagsKeepsFirstOccurrence(t *testing.T) {
	got := NormalizeTags([]DietaryTag{TagVegan, TagKeto, TagVegan, TagPaleo, TagKeto})
	assert.Equal(t, []DietaryTag{TagVegan, TagKeto, TagPaleo}, got)
}

func TestParseDayOfWeek(t *testing.T) {
	for in, want := range map[string]DayOfWeek{"monday": Monday, "Tue": Tuesday, " SUNDAY ": Sunday} {
		got, err := ParseDayOfWeek(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseDayOfWeek("someday")
	assert.Error(t, err)
}

func TestNewMealPlanHasAllDaysEmpty(t *testing.T) {
	p := NewMealPlan("plan-1", "2024-01-01T00:00:00Z")
	require.Len(t, p.Meals, 7)
	for _, d := range Week() {
		for _, m := range MealTypes() {
			assert.Empty(t, p.Slot(d, m))
		}
	}
}

func TestMealPlanCloneIsIndependent(t *testing.T) {
	p := NewMealPlan("plan-1", "2024-01-01")
	c := p.Clone()
	day := c.Meals[Monday]
	day.SetSlot(MealLunch, "r1")
	c.Meals[Monday] = day

	assert.Equal(t, "r1", c.Slot(Monday, MealLunch))
	assert.Empty(t, p.Slot(Monday, MealLunch))
}

func TestMealPlanJSONShape(t *testing.T) {
	p := NewMealPlan("plan-1", "2024-01-01T00:00:00.000Z")
	day := p.Meals[Friday]
	day.SetSlot(MealDinner, "r9")
	p.Meals[Friday] = day

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-01-01T00:00:00.000Z", raw["weekStartDate"])
	meals := raw["meals"].(map[string]any)
	assert.Equal(t, map[string]any{"dinner": "r9"}, meals["Friday"])
	assert.Equal(t, map[string]any{}, meals["Monday"])
}

func TestRecipeCloneNormalizesNilSlices(t *testing.T) {
	r := Recipe{ID: "x", Name: "Toast"}.Clone()
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Steps)
	assert.NotNil(t, r.DietaryTags)
}

func TestShoppingListKeepsInsertionOrder(t *testing.T) {
	l := NewShoppingList()
	l.Set(ShoppingItem{Key: "salt", Name: "salt", Quantity: 1, Unit: "tsp"})
	l.Set(ShoppingItem{Key: "flour", Name: "flour", Quantity: 2, Unit: "cups"})
	l.Set(ShoppingItem{Key: "salt", Name: "salt", Quantity: 3, Unit: "tsp"})

	assert.Equal(t, []string{"salt", "flour"}, l.Keys())
	it, ok := l.Get("salt")
	require.True(t, ok)
	assert.Equal(t, 3.0, it.Quantity)

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"salt":{"quantity":3,"unit":"tsp"},"flour":{"quantity":2,"unit":"cups"}}`, string(data))
	assert.Equal(t, `{"salt":{"quantity":3,"unit":"tsp"},"flour":{"quantity":2,"unit":"cups"}}`, string(data))
}
