package recipes

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/validation"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "recipes.json"))
	t.Cleanup(func() { _ = store.Close() })

	out := &bytes.Buffer{}
	ctx := cli.NewContext(store)
	ctx.Out = out
	ctx.In = strings.NewReader("")
	return ctx, out
}

func addPancakes(t *testing.T, ctx *cli.Context) {
	t.Helper()
	cmd := &RecipeAddCmd{
		Name:        "Pancakes",
		Category:    "breakfast",
		Ingredients: []string{"2 cups flour", "3 egg", "1|cup|whole milk"},
		Steps:       []string{"Mix", "Fry"},
		Tags:        []string{"vegetarian"},
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("failed to add recipe: %v", err)
	}
}

func TestRecipeAddCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)

	if !strings.Contains(out.String(), "Added recipe: Pancakes") {
		t.Errorf("unexpected output: %s", out.String())
	}

	session, err := ctx.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	all := session.Recipes()
	if len(all) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(all))
	}
	r := all[0]
	if r.Category != "Breakfast" {
		t.Errorf("expected category Breakfast, got %s", r.Category)
	}
	if len(r.Ingredients) != 3 || r.Ingredients[2].Name != "whole milk" || r.Ingredients[2].Unit != "cup" {
		t.Errorf("unexpected ingredients: %+v", r.Ingredients)
	}
	if len(r.DietaryTags) != 1 || r.DietaryTags[0] != "Vegetarian" {
		t.Errorf("unexpected tags: %v", r.DietaryTags)
	}
}

func TestRecipeAddCmd_DefaultCategory(t *testing.T) {
	ctx, _ := setupTestContext(t)
	cmd := &RecipeAddCmd{Name: "Stew", Category: "Dinner", Ingredients: []string{"1 kg beef"}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("failed to add recipe: %v", err)
	}
	session, _ := ctx.Session()
	if got := session.Recipes()[0].Category; got != "Dinner" {
		t.Errorf("expected Dinner, got %s", got)
	}
}

func TestRecipeAddCmd_RejectsDuplicate(t *testing.T) {
	ctx, _ := setupTestContext(t)
	addPancakes(t, ctx)

	dup := &RecipeAddCmd{
		Name:        "PANCAKES",
		Category:    "Breakfast",
		Ingredients: []string{"2 cups flour", "3 egg", "1|cup|whole milk"},
	}
	err := dup.Run(ctx)
	if !errors.Is(err, validation.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRecipeAddCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  RecipeAddCmd
	}{
		{"no ingredients", RecipeAddCmd{Name: "Air", Category: "Dinner"}},
		{"bad category", RecipeAddCmd{Name: "Air", Category: "Brunch", Ingredients: []string{"1 g air"}}},
		{"bad tag", RecipeAddCmd{Name: "Air", Category: "Dinner", Ingredients: []string{"1 g air"}, Tags: []string{"carnivore"}}},
		{"bad ingredient", RecipeAddCmd{Name: "Air", Category: "Dinner", Ingredients: []string{"some air"}}},
		{"zero quantity", RecipeAddCmd{Name: "Air", Category: "Dinner", Ingredients: []string{"0 g air"}}},
		{"bad image", RecipeAddCmd{Name: "Air", Category: "Dinner", Ingredients: []string{"1 g air"}, Image: "not a url"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRecipeEditCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)

	name := "Fluffy Pancakes"
	cmd := &RecipeEditCmd{
		Recipe:      "pancakes",
		Name:        &name,
		Ingredients: []string{"3 cups flour"},
		ClearTags:   true,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out.String(), "Updated recipe: Fluffy Pancakes") {
		t.Errorf("unexpected output: %s", out.String())
	}

	session, _ := ctx.Session()
	r := session.Recipes()[0]
	if r.Name != name || len(r.Ingredients) != 1 || len(r.DietaryTags) != 0 {
		t.Errorf("unexpected recipe after edit: %+v", r)
	}
	if len(r.Steps) != 2 {
		t.Errorf("steps should be untouched, got %v", r.Steps)
	}
}

func TestRecipeEditCmd_InvalidLeavesRecipe(t *testing.T) {
	ctx, _ := setupTestContext(t)
	addPancakes(t, ctx)

	blank := "  "
	if err := (&RecipeEditCmd{Recipe: "Pancakes", Name: &blank}).Run(ctx); err == nil {
		t.Fatal("expected validation error")
	}
	session, _ := ctx.Session()
	if got := session.Recipes()[0].Name; got != "Pancakes" {
		t.Errorf("recipe changed to %q", got)
	}
}

func TestRecipeDeleteCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)

	if err := (&RecipeDeleteCmd{Recipe: "Pancakes", Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted recipe: Pancakes") {
		t.Errorf("unexpected output: %s", out.String())
	}
	session, _ := ctx.Session()
	if n := len(session.Recipes()); n != 0 {
		t.Errorf("expected no recipes, got %d", n)
	}
}

func TestRecipeDeleteCmd_Declined(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)
	ctx.In = strings.NewReader("n\n")

	if err := (&RecipeDeleteCmd{Recipe: "Pancakes"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("unexpected output: %s", out.String())
	}
	session, _ := ctx.Session()
	if n := len(session.Recipes()); n != 1 {
		t.Errorf("expected recipe to survive, got %d recipes", n)
	}
}

func TestRecipeDeleteCmd_Unknown(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&RecipeDeleteCmd{Recipe: "nothing", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for unknown recipe")
	}
}

func TestRecipeListAndSearch(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)
	if err := (&RecipeAddCmd{Name: "Steak", Category: "Dinner", Ingredients: []string{"1 kg beef"}, Tags: []string{"keto,paleo"}}).Run(ctx); err != nil {
		t.Fatalf("failed to add recipe: %v", err)
	}

	out.Reset()
	if err := (&RecipeListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Pancakes") || !strings.Contains(out.String(), "Steak") {
		t.Errorf("list output missing recipes: %s", out.String())
	}

	out.Reset()
	if err := (&RecipeSearchCmd{Term: "FLOUR", Category: "All"}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out.String(), "Pancakes") || strings.Contains(out.String(), "Steak") {
		t.Errorf("unexpected search output: %s", out.String())
	}

	out.Reset()
	if err := (&RecipeSearchCmd{Category: "All", Tags: []string{"Keto"}}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if strings.Contains(out.String(), "Pancakes") || !strings.Contains(out.String(), "Steak") {
		t.Errorf("unexpected tag search output: %s", out.String())
	}

	out.Reset()
	if err := (&RecipeSearchCmd{Category: "Lunch"}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out.String(), "No matching recipes") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestRecipeShowCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	addPancakes(t, ctx)
	out.Reset()

	if err := (&RecipeShowCmd{Recipe: "Pancakes"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"Category: Breakfast", "- 2 cups flour", "- 3 egg", "- 1 cup whole milk", "2. Fry", "Tags:     Vegetarian"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, out.String())
		}
	}
}
