package recipes

import (
	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/models"
	reciperepo "github.com/julianstephens/recipeplanner/internal/recipes"
	"github.com/julianstephens/recipeplanner/internal/search"
)

type RecipeListCmd struct {
	ShowIDs bool `help:"Show recipe IDs." name:"show-ids"`
}

func (c *RecipeListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}
	printRecipes(ctx, session.Recipes(), c.ShowIDs, "No recipes found")
	return nil
}

// RecipeSearchCmd applies the same filter as the recipe tab of the TUI
type RecipeSearchCmd struct {
	Term     string   `arg:"" optional:"" help:"Text to find in recipe or ingredient names."`
	Category string   `short:"c" help:"Category to match, or All." default:"All"`
	Tags     []string `short:"t" name:"tag" help:"Required dietary tag. Repeatable or comma-separated."`
	ShowIDs  bool     `help:"Show recipe IDs." name:"show-ids"`
}

func (c *RecipeSearchCmd) Run(ctx *cli.Context) error {
	query := search.Query{Term: c.Term, Category: search.AllCategories}
	if c.Category != "" && c.Category != search.AllCategories {
		category, err := models.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		query.Category = string(category)
	}
	tags, err := cli.ParseTags(c.Tags)
	if err != nil {
		return err
	}
	query.Tags = tags

	session, err := ctx.Session()
	if err != nil {
		return err
	}
	printRecipes(ctx, session.Search(query), c.ShowIDs, "No matching recipes")
	return nil
}

type RecipeShowCmd struct {
	Recipe string `arg:"" help:"Recipe ID or name."`
}

func (c *RecipeShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}
	recipe, err := cli.ResolveRecipe(session, c.Recipe)
	if err != nil {
		return err
	}

	ctx.Printf("%s\n", recipe.Name)
	ctx.Printf("  ID:       %s\n", recipe.ID)
	ctx.Printf("  Category: %s\n", recipe.Category)
	ctx.Printf("  Tags:     %s\n", cli.FormatTags(recipe.DietaryTags))
	if recipe.ImageURL != "" {
		ctx.Printf("  Image:    %s\n", recipe.ImageURL)
	}
	ctx.Println("  Ingredients:")
	for _, ing := range recipe.Ingredients {
		ctx.Printf("    - %s\n", reciperepo.FormatIngredient(ing))
	}
	if len(recipe.Steps) > 0 {
		ctx.Println("  Steps:")
		for i, step := range recipe.Steps {
			ctx.Printf("    %d. %s\n", i+1, step)
		}
	}
	return nil
}

func printRecipes(ctx *cli.Context, list []models.Recipe, showIDs bool, empty string) {
	if len(list) == 0 {
		ctx.Println(empty)
		return
	}

	ctx.Println("Recipes:")
	for _, r := range list {
		idStr := ""
		if showIDs {
			idStr = " (ID: " + r.ID + ")"
		}
		ctx.Printf("  %s%s - %s, %d ingredients [%s]\n",
			r.Name, idStr, r.Category, len(r.Ingredients), cli.FormatTags(r.DietaryTags))
	}
}
