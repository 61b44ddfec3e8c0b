package system

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	ctx := &cli.Context{Store: store, Out: &bytes.Buffer{}}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}
	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := ctx.Store.Put(constants.KeyRecipes, []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second init failed (should be idempotent): %v", err)
	}
	if _, err := ctx.Store.Get(constants.KeyRecipes); err != nil {
		t.Errorf("second init lost data: %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	if err := ctx.Store.Put(constants.KeyRecipes, []byte(`[]`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}
	if _, err := ctx.Store.Get(constants.KeyRecipes); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected data to be wiped, got err=%v", err)
	}
	if !strings.Contains(ctx.Out.(*bytes.Buffer).String(), "Deleted existing store") {
		t.Error("expected deletion to be reported")
	}
}

func TestInitCmd_ForceSameSource(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx)
	if err == nil {
		t.Fatal("expected error when source and destination are the same")
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.json")
	src := storage.NewJSONStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("source Init failed: %v", err)
	}
	recipes := `[{"id":"r1","name":"Toast","category":"Breakfast","ingredients":[],"steps":[]}]`
	if err := src.Put(constants.KeyRecipes, []byte(recipes)); err != nil {
		t.Fatalf("source Put failed: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("source Close failed: %v", err)
	}

	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}
	got, err := ctx.Store.Get(constants.KeyRecipes)
	if err != nil {
		t.Fatalf("copied recipes missing: %v", err)
	}
	if !strings.Contains(string(got), `"Toast"`) {
		t.Errorf("unexpected copied value: %s", got)
	}
	if !strings.Contains(ctx.Out.(*bytes.Buffer).String(), "Copied 1 entries.") {
		t.Errorf("unexpected output: %s", ctx.Out.(*bytes.Buffer).String())
	}
}
