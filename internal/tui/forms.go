package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/recipes"
	"github.com/julianstephens/recipeplanner/internal/search"
)

type RecipeFormModel struct {
	Name        string
	Category    models.Category
	Ingredients string
	Steps       string
	Tags        []models.DietaryTag
	ImageURL    string
}

func newRecipeFormModel(r models.Recipe) *RecipeFormModel {
	lines := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		lines[i] = recipes.FormatIngredient(ing)
	}
	category := r.Category
	if category == "" {
		category = models.CategoryDinner
	}
	return &RecipeFormModel{
		Name:        r.Name,
		Category:    category,
		Ingredients: strings.Join(lines, "\n"),
		Steps:       strings.Join(r.Steps, "\n"),
		Tags:        append([]models.DietaryTag(nil), r.DietaryTags...),
		ImageURL:    r.ImageURL,
	}
}

// Draft converts the form fields. Ingredient lines were checked by the form.
func (fm *RecipeFormModel) Draft() (models.RecipeDraft, error) {
	ingredients, err := recipes.ParseIngredients(fm.Ingredients)
	if err != nil {
		return models.RecipeDraft{}, err
	}
	return models.RecipeDraft{
		Name:        fm.Name,
		Ingredients: ingredients,
		Steps:       recipes.ParseSteps(fm.Steps),
		Category:    fm.Category,
		DietaryTags: fm.Tags,
		ImageURL:    strings.TrimSpace(fm.ImageURL),
	}, nil
}

type FilterFormModel struct {
	Term     string
	Category string
	Tags     []models.DietaryTag
}

type SlotFormModel struct {
	RecipeID string
}

func categoryOptions() []huh.Option[models.Category] {
	opts := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		opts = append(opts, huh.NewOption(string(c), c))
	}
	return opts
}

func tagOptions(selected []models.DietaryTag) []huh.Option[models.DietaryTag] {
	opts := make([]huh.Option[models.DietaryTag], 0, len(models.DietaryTags()))
	for _, t := range models.DietaryTags() {
		opt := huh.NewOption(string(t), t)
		for _, s := range selected {
			if s == t {
				opt = opt.Selected(true)
			}
		}
		opts = append(opts, opt)
	}
	return opts
}

// NewRecipeForm creates the add/edit recipe form
func NewRecipeForm(fm *RecipeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&fm.Category),
			huh.NewMultiSelect[models.DietaryTag]().
				Title("Dietary tags").
				Options(tagOptions(fm.Tags)...).
				Value(&fm.Tags),
			huh.NewInput().
				Title("Image URL (optional)").
				Value(&fm.ImageURL),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Ingredients").
				Description("One per line: \"2 cups flour\", \"3 eggs\" or \"1.5|tbsp|olive oil\"").
				Value(&fm.Ingredients).
				Validate(func(s string) error {
					ingredients, err := recipes.ParseIngredients(s)
					if err != nil {
						return err
					}
					if len(ingredients) == 0 {
						return fmt.Errorf("add at least one ingredient")
					}
					return nil
				}),
			huh.NewText().
				Title("Steps").
				Description("One step per line").
				Value(&fm.Steps),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewFilterForm creates the recipe search form
func NewFilterForm(fm *FilterFormModel) *huh.Form {
	categories := []huh.Option[string]{huh.NewOption(search.AllCategories, search.AllCategories)}
	for _, c := range models.Categories() {
		categories = append(categories, huh.NewOption(string(c), string(c)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Matches recipe and ingredient names").
				Value(&fm.Term),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&fm.Category),
			huh.NewMultiSelect[models.DietaryTag]().
				Title("Dietary tags").
				Description("Recipes must carry every selected tag").
				Options(tagOptions(fm.Tags)...).
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSlotForm creates the recipe picker for one meal slot. Only recipes of
// the matching category are offered.
func NewSlotForm(fm *SlotFormModel, day models.DayOfWeek, meal models.MealType, choices []models.Recipe) *huh.Form {
	opts := []huh.Option[string]{huh.NewOption("(empty)", "")}
	for _, r := range choices {
		opts = append(opts, huh.NewOption(r.Name, r.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%s %s", day, meal)).
				Options(opts...).
				Value(&fm.RecipeID),
		),
	).WithTheme(huh.ThemeDracula())
}
