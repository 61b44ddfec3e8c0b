package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing store before initializing."`
	Source string `help:"Store path or PostgreSQL connection string to copy recipes and the meal plan from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized recipeplanner storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := c.copyFrom(ctx)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.Printf("Copied %d entries.\n", n)
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if postgres.IsConnString(path) || path == "postgresql" {
		return errors.New("--force is not supported for PostgreSQL stores")
	}
	if c.Source != "" {
		absPath, errA := filepath.Abs(path)
		absSource, errB := filepath.Abs(c.Source)
		if errA == nil && errB == nil && absPath == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	_, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing store: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing store: %w", err)
	}
	ctx.Printf("Deleted existing store at: %s\n", path)
	return nil
}

func (c *InitCmd) copyFrom(ctx *cli.Context) (int, error) {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return 0, err
	}
	if err := source.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source store: %w", err)
	}
	defer source.Close()
	return storage.Copy(ctx.Store, source)
}
