package plans

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/recipeplanner/internal/cli"
	reciperepo "github.com/julianstephens/recipeplanner/internal/recipes"
)

type ShoppingCmd struct {
	JSON bool `help:"Print the list as a JSON object keyed by item." name:"json"`
}

func (c *ShoppingCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	list := session.ShoppingList()
	if c.JSON {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode shopping list: %w", err)
		}
		ctx.Println(string(data))
		return nil
	}

	if list.Len() == 0 {
		ctx.Println("Shopping list is empty. Assign recipes to the meal plan first.")
		return nil
	}
	ctx.Println("Shopping list:")
	for _, item := range list.Items() {
		qty := reciperepo.FormatQuantity(item.Quantity)
		if item.Unit != "" {
			qty += " " + item.Unit
		}
		ctx.Printf("  [ ] %s: %s\n", item.Key, qty)
	}
	return nil
}
