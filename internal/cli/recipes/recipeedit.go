package recipes

import (
	"fmt"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/models"
)

// RecipeEditCmd replaces only the fields given on the command line. List
// flags replace the whole list.
type RecipeEditCmd struct {
	Recipe      string   `arg:"" help:"Recipe ID or name."`
	Name        *string  `help:"New recipe name."`
	Category    *string  `short:"c" help:"New category."`
	Ingredients []string `short:"i" name:"ingredient" help:"Replacement ingredient list. Repeatable." sep:"none"`
	Steps       []string `short:"s" name:"step" help:"Replacement step list. Repeatable." sep:"none"`
	Tags        []string `short:"t" name:"tag" help:"Replacement dietary tags. Repeatable or comma-separated."`
	ClearTags   bool     `help:"Remove all dietary tags."`
	Image       *string  `help:"New image URL; pass an empty value to clear."`
}

func (c *RecipeEditCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	recipe, err := cli.ResolveRecipe(session, c.Recipe)
	if err != nil {
		return err
	}

	if c.Name != nil {
		recipe.Name = *c.Name
	}
	if c.Category != nil {
		category, err := models.ParseCategory(*c.Category)
		if err != nil {
			return err
		}
		recipe.Category = category
	}
	if len(c.Ingredients) > 0 {
		ingredients, err := parseIngredients(c.Ingredients)
		if err != nil {
			return err
		}
		recipe.Ingredients = ingredients
	}
	if len(c.Steps) > 0 {
		recipe.Steps = c.Steps
	}
	if c.ClearTags {
		recipe.DietaryTags = nil
	}
	if len(c.Tags) > 0 {
		tags, err := cli.ParseTags(c.Tags)
		if err != nil {
			return err
		}
		recipe.DietaryTags = tags
	}
	if c.Image != nil {
		recipe.ImageURL = *c.Image
	}

	if _, err := session.EditRecipe(recipe); err != nil {
		return fmt.Errorf("failed to edit recipe: %w", err)
	}

	ctx.Printf("Updated recipe: %s (ID: %s)\n", recipe.Name, recipe.ID)
	return nil
}
