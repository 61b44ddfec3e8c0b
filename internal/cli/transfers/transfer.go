package transfers

import (
	"fmt"
	"os"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/transfer"
)

type ExportCmd struct {
	Output string `short:"o" help:"File to write, or - for stdout." default:"${export_file}"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = transfer.DefaultFilename
	}
	if output == "-" {
		return session.Export(ctx.Out)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := session.Export(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	ctx.Printf("✓ Exported %d recipes and the meal plan to %s\n", len(session.Recipes()), output)
	return nil
}

// ImportCmd replaces stored recipes and/or the meal plan with the contents
// of an export file. File stores are backed up first.
type ImportCmd struct {
	File string `arg:"" help:"Export file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	res, err := session.Import(f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if !res.RecipesReplaced && !res.PlanReplaced {
		ctx.Println("Nothing to import: the file has neither recipes nor a meal plan.")
		return nil
	}
	if res.RecipesReplaced {
		ctx.Printf("✓ Imported %d recipes\n", res.Recipes)
	}
	if res.PlanReplaced {
		ctx.Println("✓ Imported meal plan")
	}
	return nil
}
