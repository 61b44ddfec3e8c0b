package plans

import (
	"fmt"
	"slices"

	"github.com/julianstephens/recipeplanner/internal/cli"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/planner"
)

type PlanShowCmd struct {
	ShowIDs bool `help:"Show recipe IDs." name:"show-ids"`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	plan := session.Plan()
	ctx.Printf("Meal plan for the week of %s\n\n", weekLabel(plan.WeekStartDate))
	for _, day := range models.Week() {
		ctx.Printf("%s\n", day)
		for _, meal := range models.MealTypes() {
			ctx.Printf("  %-10s %s\n", meal+":", slotLabel(session, plan.Slot(day, meal), c.ShowIDs))
		}
	}
	return nil
}

// slotLabel renders an empty slot and a slot whose recipe was deleted alike
func slotLabel(s *planner.Session, id string, showIDs bool) string {
	if id == "" {
		return "-"
	}
	r, ok := s.Recipe(id)
	if !ok {
		return "-"
	}
	if showIDs {
		return fmt.Sprintf("%s (ID: %s)", r.Name, r.ID)
	}
	return r.Name
}

func weekLabel(weekStart string) string {
	if len(weekStart) >= 10 {
		return weekStart[:10]
	}
	return weekStart
}

type PlanAssignCmd struct {
	Day    string `arg:"" help:"Day of the week (monday or mon)."`
	Meal   string `arg:"" help:"Meal (breakfast|lunch|dinner)."`
	Recipe string `arg:"" help:"Recipe ID or name."`
	Force  bool   `help:"Allow a recipe whose category does not match the meal."`
}

func (c *PlanAssignCmd) Run(ctx *cli.Context) error {
	day, meal, err := parseSlot(c.Day, c.Meal)
	if err != nil {
		return err
	}

	session, err := ctx.Session()
	if err != nil {
		return err
	}
	recipe, err := cli.ResolveRecipe(session, c.Recipe)
	if err != nil {
		return err
	}

	if !c.Force {
		choices := session.PlannerChoices(meal)
		if !slices.ContainsFunc(choices, func(r models.Recipe) bool { return r.ID == recipe.ID }) {
			return fmt.Errorf("%s is a %s recipe and cannot fill a %s slot (use --force to override)",
				recipe.Name, recipe.Category, meal)
		}
	}

	if err := session.Assign(day, meal, recipe.ID); err != nil {
		return fmt.Errorf("failed to assign recipe: %w", err)
	}
	ctx.Printf("Assigned %s to %s %s\n", recipe.Name, day, meal)
	return nil
}

type PlanClearCmd struct {
	Day  string `arg:"" help:"Day of the week."`
	Meal string `arg:"" help:"Meal (breakfast|lunch|dinner)."`
}

func (c *PlanClearCmd) Run(ctx *cli.Context) error {
	day, meal, err := parseSlot(c.Day, c.Meal)
	if err != nil {
		return err
	}

	session, err := ctx.Session()
	if err != nil {
		return err
	}
	if err := session.ClearSlot(day, meal); err != nil {
		return fmt.Errorf("failed to clear slot: %w", err)
	}
	ctx.Printf("Cleared %s %s\n", day, meal)
	return nil
}

type PlanResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PlanResetCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Session()
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm("Clear every slot and start a new week?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled")
			return nil
		}
	}

	plan, err := session.ResetPlan()
	if err != nil {
		return fmt.Errorf("failed to reset plan: %w", err)
	}
	ctx.Printf("Started a new meal plan for the week of %s\n", weekLabel(plan.WeekStartDate))
	return nil
}

// PlanChoicesCmd lists the recipes offered for a meal slot
type PlanChoicesCmd struct {
	Meal string `arg:"" help:"Meal (breakfast|lunch|dinner)."`
}

func (c *PlanChoicesCmd) Run(ctx *cli.Context) error {
	meal, err := models.ParseMealType(c.Meal)
	if err != nil {
		return err
	}

	session, err := ctx.Session()
	if err != nil {
		return err
	}
	choices := session.PlannerChoices(meal)
	if len(choices) == 0 {
		ctx.Printf("No %s recipes found\n", meal)
		return nil
	}
	for _, r := range choices {
		ctx.Printf("  %s (ID: %s)\n", r.Name, r.ID)
	}
	return nil
}

func parseSlot(dayArg, mealArg string) (models.DayOfWeek, models.MealType, error) {
	day, err := models.ParseDayOfWeek(dayArg)
	if err != nil {
		return "", "", err
	}
	meal, err := models.ParseMealType(mealArg)
	if err != nil {
		return "", "", err
	}
	return day, meal, nil
}
