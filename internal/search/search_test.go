package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/recipeplanner/internal/models"
)

func fixtures() []models.Recipe {
	return []models.Recipe{
		{
			ID: "1", Name: "Banana Pancakes", Category: models.CategoryBreakfast,
			Ingredients: []models.Ingredient{{Name: "Flour", Quantity: 2, Unit: "cups"}, {Name: "banana", Quantity: 1}},
			DietaryTags: []models.DietaryTag{models.TagVegetarian},
		},
		{
			ID: "2", Name: "Lentil Soup", Category: models.CategoryLunch,
			Ingredients: []models.Ingredient{{Name: "red lentils", Quantity: 1, Unit: "cup"}},
			DietaryTags: []models.DietaryTag{models.TagVegan, models.TagVegetarian, models.TagGlutenFree},
		},
		{
			ID: "3", Name: "Steak", Category: models.CategoryDinner,
			Ingredients: []models.Ingredient{{Name: "ribeye", Quantity: 1}},
			DietaryTags: []models.DietaryTag{models.TagKeto, models.TagPaleo, models.TagGlutenFree},
		},
		{
			ID: "4", Name: "Flourless Brownies", Category: models.CategoryDessert,
			Ingredients: []models.Ingredient{{Name: "cocoa", Quantity: 0.5, Unit: "cup"}},
			DietaryTags: []models.DietaryTag{models.TagGlutenFree},
		},
		{
			ID: "5", Name: "Trail Mix", Category: models.CategorySnack,
			Ingredients: []models.Ingredient{{Name: "almonds", Quantity: 1, Unit: "cup"}},
		},
	}
}

func ids(rs []models.Recipe) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestFilterEmptyQueryReturnsEverythingInOrder(t *testing.T) {
	all := fixtures()
	assert.Equal(t, all, Filter(all, Query{}))
	assert.Equal(t, all, Filter(all, Query{Category: AllCategories, Tags: []models.DietaryTag{}}))
}

func TestFilterTermMatchesNameOrIngredient(t *testing.T) {
	all := fixtures()
	assert.Equal(t, []string{"1", "4"}, ids(Filter(all, Query{Term: "FLOUR"})))
	assert.Equal(t, []string{"2"}, ids(Filter(all, Query{Term: "lentil"})))
	assert.Equal(t, []string{"3"}, ids(Filter(all, Query{Term: "rib"})))
	assert.Empty(t, Filter(all, Query{Term: "tofu"}))
}

func TestFilterCategory(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(Filter(fixtures(), Query{Category: string(models.CategoryDinner)})))
}

func TestFilterTagsUseAndSemantics(t *testing.T) {
	all := fixtures()
	assert.Equal(t, []string{"2", "3", "4"}, ids(Filter(all, Query{Tags: []models.DietaryTag{models.TagGlutenFree}})))
	assert.Equal(t, []string{"2"}, ids(Filter(all, Query{Tags: []models.DietaryTag{models.TagGlutenFree, models.TagVegan}})))
	assert.Empty(t, Filter(all, Query{Tags: []models.DietaryTag{models.TagVegan, models.TagKeto}}))
}

func TestFilterCombinesPredicates(t *testing.T) {
	q := Query{Term: "flour", Category: string(models.CategoryDessert), Tags: []models.DietaryTag{models.TagGlutenFree}}
	assert.Equal(t, []string{"4"}, ids(Filter(fixtures(), q)))

	q.Category = string(models.CategoryBreakfast)
	assert.Empty(t, Filter(fixtures(), q))
}

func TestFilterIsIdempotent(t *testing.T) {
	queries := []Query{
		{Term: "flour"},
		{Category: string(models.CategoryLunch)},
		{Tags: []models.DietaryTag{models.TagGlutenFree}},
		{Term: "e", Tags: []models.DietaryTag{models.TagVegetarian}},
	}
	for _, q := range queries {
		once := Filter(fixtures(), q)
		assert.Equal(t, once, Filter(once, q))
	}
}

func TestForMealTypeExcludesSnackAndDessert(t *testing.T) {
	all := fixtures()
	assert.Equal(t, []string{"1"}, ids(ForMealType(all, models.MealBreakfast)))
	assert.Equal(t, []string{"2"}, ids(ForMealType(all, models.MealLunch)))
	assert.Equal(t, []string{"3"}, ids(ForMealType(all, models.MealDinner)))
}
