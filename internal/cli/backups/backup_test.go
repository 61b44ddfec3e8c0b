package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/recipeplanner/internal/backup"
	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/storage/postgres"
	"github.com/julianstephens/recipeplanner/internal/storage/sqlite"
)

func newContext(store storage.Provider) (*cli.Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	ctx := cli.NewContext(store)
	ctx.Out = out
	ctx.In = strings.NewReader("")
	return ctx, out
}

func TestBackupCreateAndList(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "recipes.db"))
	defer store.Close()
	ctx, out := newContext(store)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: recipeplanner-") {
		t.Errorf("unexpected output: %s", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestBackupListCmd_Empty(t *testing.T) {
	ctx, out := newContext(storage.NewJSONStore(filepath.Join(t.TempDir(), "recipes.json")))
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestBackupCmds_PostgresUnsupported(t *testing.T) {
	ctx, _ := newContext(postgres.New("postgres://cook@localhost/recipes"))
	if err := (&BackupCreateCmd{}).Run(ctx); err == nil {
		t.Error("expected backup create to be refused for PostgreSQL")
	}
	if err := (&BackupListCmd{}).Run(ctx); err == nil {
		t.Error("expected backup list to be refused for PostgreSQL")
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "recipes.json")
	ctx, out := newContext(storage.NewJSONStore(storePath))

	session, err := ctx.Session()
	if err != nil {
		t.Fatalf("Session failed: %v", err)
	}
	if _, err := session.AddRecipe(models.RecipeDraft{
		Name:        "Chili",
		Category:    models.CategoryDinner,
		Ingredients: []models.Ingredient{{Name: "beans", Quantity: 2, Unit: "can"}},
	}); err != nil {
		t.Fatalf("AddRecipe failed: %v", err)
	}
	backupPath, err := backup.NewManager(storePath).CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := session.DeleteRecipe(session.Recipes()[0].ID); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}

	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(backupPath), Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Previous data saved as") {
		t.Errorf("unexpected output: %s", out.String())
	}

	restored, _ := newContext(storage.NewJSONStore(storePath))
	s, err := restored.Session()
	if err != nil {
		t.Fatalf("Session after restore failed: %v", err)
	}
	if len(s.Recipes()) != 1 || s.Recipes()[0].Name != "Chili" {
		t.Errorf("expected restored recipe, got %+v", s.Recipes())
	}
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "recipes.json")
	ctx, out := newContext(storage.NewJSONStore(storePath))
	if err := ctx.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	backupPath, err := backup.NewManager(storePath).CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	ctx.In = strings.NewReader("n\n")

	if err := (&BackupRestoreCmd{BackupFile: backupPath}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !strings.Contains(out.String(), "Restore cancelled.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestBackupRestoreCmd_Missing(t *testing.T) {
	ctx, _ := newContext(storage.NewJSONStore(filepath.Join(t.TempDir(), "recipes.json")))
	if err := (&BackupRestoreCmd{BackupFile: "nope.json", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
