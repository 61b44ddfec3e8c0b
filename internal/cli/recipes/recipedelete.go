package recipes

import (
	"fmt"

	"github.com/julianstephens/recipeplanner/internal/cli"
)

type RecipeDeleteCmd struct {
	Recipe string `arg:"" help:"Recipe ID or name to delete."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RecipeDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	recipe, err := cli.ResolveRecipe(session, c.Recipe)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete recipe %q?", recipe.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled")
			return nil
		}
	}

	if _, err := session.DeleteRecipe(recipe.ID); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	ctx.Printf("Deleted recipe: %s (ID: %s)\n", recipe.Name, recipe.ID)
	return nil
}
