package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/recipeplanner/internal/backup"
	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/planner"
	"github.com/julianstephens/recipeplanner/internal/storage/sqlite"
	"github.com/julianstephens/recipeplanner/internal/validation"
)

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkWarn
	checkFail
	checkSkipped
)

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	report := func(name string, res checkResult, detail string) {
		switch res {
		case checkOK:
			ctx.Printf("✓ %s: OK\n", name)
		case checkWarn:
			ctx.Printf("⚠ %s: WARNING\n", name)
		case checkFail:
			ctx.Printf("❌ %s: FAIL\n", name)
			hasError = true
		case checkSkipped:
			ctx.Printf("⊘ %s: SKIPPED (%s)\n", name, detail)
			return
		}
		if detail != "" {
			ctx.Printf("   %s\n", detail)
		}
	}

	if err := ctx.Load(); err != nil {
		report("Store reachable", checkFail, err.Error())
		for _, name := range []string{"Schema version", "Stored data", "Recipe validation", "Duplicate recipes", "Meal plan references"} {
			report(name, checkSkipped, "store not reachable")
		}
	} else {
		report("Store reachable", checkOK, "")
		res, detail := checkSchemaVersion(ctx)
		report("Schema version", res, detail)

		session, err := ctx.Session()
		if err != nil {
			report("Stored data", checkFail, err.Error())
			for _, name := range []string{"Recipe validation", "Duplicate recipes", "Meal plan references"} {
				report(name, checkSkipped, "stored data unreadable")
			}
		} else {
			report("Stored data", checkOK, fmt.Sprintf("%d recipes", len(session.Recipes())))
			res, detail = checkRecipes(session)
			report("Recipe validation", res, detail)
			res, detail = checkDuplicates(session)
			report("Duplicate recipes", res, detail)
			res, detail = checkPlanReferences(session)
			report("Meal plan references", res, detail)
		}
	}

	res, detail := checkBackups(ctx)
	report("Backups present", res, detail)

	if path := logger.Path(); path != "" {
		ctx.Printf("\nLog file: %s\n", path)
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) (checkResult, string) {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return checkOK, ""
	}
	current, latest, err := store.SchemaVersion()
	if err != nil {
		return checkFail, err.Error()
	}
	if current != latest {
		return checkFail, fmt.Sprintf("schema version %d, expected %d", current, latest)
	}
	return checkOK, ""
}

func checkRecipes(s *planner.Session) (checkResult, string) {
	v := validation.New()
	var problems []string
	for _, r := range s.Recipes() {
		if err := v.ValidateRecipe(r); err != nil {
			problems = append(problems, fmt.Sprintf("%s (%s): %v", r.Name, r.ID, err))
		}
	}
	if len(problems) > 0 {
		return checkWarn, strings.Join(problems, "\n   ")
	}
	return checkOK, ""
}

func checkDuplicates(s *planner.Session) (checkResult, string) {
	pairs := s.Duplicates()
	if len(pairs) == 0 {
		return checkOK, ""
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%q: %s and %s", p.First.Name, p.First.ID, p.Second.ID)
	}
	return checkWarn, strings.Join(lines, "\n   ")
}

func checkPlanReferences(s *planner.Session) (checkResult, string) {
	dangling := s.DanglingSlots()
	if len(dangling) == 0 {
		return checkOK, ""
	}
	lines := make([]string, len(dangling))
	for i, slot := range dangling {
		lines[i] = fmt.Sprintf("%s refers to a deleted recipe", slot)
	}
	return checkWarn, strings.Join(lines, "\n   ")
}

func checkBackups(ctx *cli.Context) (checkResult, string) {
	path := ctx.Store.GetConfigPath()
	if !backup.Supported(path) {
		return checkSkipped, "not a file store"
	}
	mgr := backup.NewManager(path)
	backups, err := mgr.ListBackups()
	if err != nil {
		return checkWarn, err.Error()
	}
	if len(backups) == 0 {
		return checkWarn, fmt.Sprintf("no backups in %s", mgr.GetBackupDir())
	}
	return checkOK, fmt.Sprintf("%d backups, newest %s", len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
}
