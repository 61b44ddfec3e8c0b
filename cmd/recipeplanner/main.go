package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/cli/backups"
	"github.com/julianstephens/recipeplanner/internal/cli/plans"
	"github.com/julianstephens/recipeplanner/internal/cli/recipes"
	"github.com/julianstephens/recipeplanner/internal/cli/system"
	"github.com/julianstephens/recipeplanner/internal/cli/transfers"
	"github.com/julianstephens/recipeplanner/internal/constants"
	apperrors "github.com/julianstephens/recipeplanner/internal/errors"
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/storage/postgres"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.db for SQLite, .json for a JSON file) or PostgreSQL connection string. Passwords belong in the OS keyring, ${env_db} or .pgpass." env:"RECIPEPLANNER_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr." env:"RECIPEPLANNER_DEBUG"`

	Init    system.InitCmd    `cmd:"" help:"Initialize recipeplanner storage."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Recipe  struct {
		Add    recipes.RecipeAddCmd    `cmd:"" help:"Add a new recipe."`
		Edit   recipes.RecipeEditCmd   `cmd:"" help:"Edit an existing recipe."`
		Delete recipes.RecipeDeleteCmd `cmd:"" help:"Delete a recipe."`
		List   recipes.RecipeListCmd   `cmd:"" help:"List all recipes." default:"1"`
		Show   recipes.RecipeShowCmd   `cmd:"" help:"Show a recipe with its ingredients and steps."`
		Search recipes.RecipeSearchCmd `cmd:"" help:"Filter recipes by text, category and dietary tags."`
	} `cmd:"" help:"Manage recipes."`
	Plan struct {
		Show    plans.PlanShowCmd    `cmd:"" help:"Show the weekly meal plan." default:"1"`
		Assign  plans.PlanAssignCmd  `cmd:"" help:"Put a recipe in a meal slot."`
		Clear   plans.PlanClearCmd   `cmd:"" help:"Empty a meal slot."`
		Reset   plans.PlanResetCmd   `cmd:"" help:"Start a new, empty week."`
		Choices plans.PlanChoicesCmd `cmd:"" help:"List the recipes offered for a meal."`
	} `cmd:"" help:"Manage the weekly meal plan."`
	Shopping plans.ShoppingCmd   `cmd:"" help:"Show the shopping list for the meal plan."`
	Export   transfers.ExportCmd `cmd:"" help:"Export recipes and the meal plan to JSON."`
	Import   transfers.ImportCmd `cmd:"" help:"Replace recipes and/or the meal plan from an export file."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Recipe collection and weekly meal planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"env_db":         constants.EnvDBConnection,
			"export_file":    constants.ExportFilename,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(CLI.Config)}); err != nil {
		apperrors.Fatal(err)
	}

	store, err := cli.ResolveStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	if err := ctx.Run(cli.NewContext(store)); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// configDir is where logs and backups live: next to a file store, or the
// default directory for PostgreSQL
func configDir(config string) string {
	if postgres.IsConnString(config) {
		config = constants.DefaultConfigPath
	}
	return filepath.Dir(cli.ExpandPath(config))
}
