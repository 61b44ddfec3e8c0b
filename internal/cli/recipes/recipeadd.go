package recipes

import (
	"fmt"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/models"
	reciperepo "github.com/julianstephens/recipeplanner/internal/recipes"
)

type RecipeAddCmd struct {
	Name        string   `arg:"" help:"Recipe name."`
	Category    string   `short:"c" help:"Category (Breakfast|Lunch|Dinner|Snack|Dessert)." default:"Dinner"`
	Ingredients []string `short:"i" name:"ingredient" help:"Ingredient as \"QTY [UNIT] NAME\" or \"QTY|UNIT|NAME\". Repeatable." sep:"none"`
	Steps       []string `short:"s" name:"step" help:"Preparation step. Repeatable." sep:"none"`
	Tags        []string `short:"t" name:"tag" help:"Dietary tag (Vegetarian|Vegan|Gluten-Free|Dairy-Free|Keto|Paleo). Repeatable or comma-separated."`
	Image       string   `help:"Image URL."`
}

func (c *RecipeAddCmd) Run(ctx *cli.Context) error {
	draft, err := c.draft()
	if err != nil {
		return err
	}

	session, err := ctx.Session()
	if err != nil {
		return err
	}

	recipe, err := session.AddRecipe(draft)
	if err != nil {
		if recipe.ID == "" {
			return fmt.Errorf("failed to add recipe: %w", err)
		}
		return err
	}

	ctx.Printf("Added recipe: %s (ID: %s)\n", recipe.Name, recipe.ID)
	return nil
}

func (c *RecipeAddCmd) draft() (models.RecipeDraft, error) {
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return models.RecipeDraft{}, err
	}
	tags, err := cli.ParseTags(c.Tags)
	if err != nil {
		return models.RecipeDraft{}, err
	}
	ingredients, err := parseIngredients(c.Ingredients)
	if err != nil {
		return models.RecipeDraft{}, err
	}

	return models.RecipeDraft{
		Name:        c.Name,
		Ingredients: ingredients,
		Steps:       c.Steps,
		Category:    category,
		DietaryTags: tags,
		ImageURL:    c.Image,
	}, nil
}

func parseIngredients(values []string) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(values))
	for _, v := range values {
		ing, err := reciperepo.ParseIngredient(v)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}
