package models

import (
	"fmt"
	"slices"
	"strings"
)

// Category is the course a recipe belongs to
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategorySnack     Category = "Snack"
	CategoryDessert   Category = "Dessert"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert}
}

// ParseCategory matches a category name case-insensitively
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

// DietaryTag marks a recipe as suitable for a diet
type DietaryTag string

const (
	TagVegetarian DietaryTag = "Vegetarian"
	TagVegan      DietaryTag = "Vegan"
	TagGlutenFree DietaryTag = "Gluten-Free"
	TagDairyFree  DietaryTag = "Dairy-Free"
	TagKeto       DietaryTag = "Keto"
	TagPaleo      DietaryTag = "Paleo"
)

// DietaryTags returns every dietary tag in display order
func DietaryTags() []DietaryTag {
	return []DietaryTag{TagVegetarian, TagVegan, TagGlutenFree, TagDairyFree, TagKeto, TagPaleo}
}

// ParseDietaryTag matches a tag name case-insensitively
func ParseDietaryTag(s string) (DietaryTag, error) {
	for _, t := range DietaryTags() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid dietary tag: %q", s)
}

// NormalizeTags drops repeated tags, keeping the first occurrence
func NormalizeTags(tags []DietaryTag) []DietaryTag {
	out := make([]DietaryTag, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

type Ingredient struct {
	Name     string  `json:"name" validate:"required,notblank"`
	Quantity float64 `json:"quantity" validate:"finite,gt=0"`
	Unit     string  `json:"unit"`
}

// Equal reports structural equality
func (i Ingredient) Equal(o Ingredient) bool {
	return i.Name == o.Name && i.Quantity == o.Quantity && i.Unit == o.Unit
}

type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required,notblank"`
	Ingredients []Ingredient `json:"ingredients" validate:"min=1,dive"`
	Steps       []string     `json:"steps" validate:"dive,notblank"`
	Category    Category     `json:"category" validate:"category"`
	DietaryTags []DietaryTag `json:"dietaryTags" validate:"dive,dietarytag"`
	ImageURL    string       `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// RecipeDraft is a recipe that has not been assigned an id yet
type RecipeDraft struct {
	Name        string
	Ingredients []Ingredient
	Steps       []string
	Category    Category
	DietaryTags []DietaryTag
	ImageURL    string
}

// Draft strips the id from a recipe
func (r Recipe) Draft() RecipeDraft {
	return RecipeDraft{
		Name:        r.Name,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Category:    r.Category,
		DietaryTags: r.DietaryTags,
		ImageURL:    r.ImageURL,
	}
}

// WithID builds a recipe from the draft
func (d RecipeDraft) WithID(id string) Recipe {
	r := Recipe{
		ID:          id,
		Name:        d.Name,
		Ingredients: d.Ingredients,
		Steps:       d.Steps,
		Category:    d.Category,
		DietaryTags: d.DietaryTags,
		ImageURL:    d.ImageURL,
	}
	return r.Clone()
}

// Clone returns a copy that shares no slices with r
func (r Recipe) Clone() Recipe {
	c := r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Steps = slices.Clone(r.Steps)
	c.DietaryTags = slices.Clone(r.DietaryTags)
	if c.Ingredients == nil {
		c.Ingredients = []Ingredient{}
	}
	if c.Steps == nil {
		c.Steps = []string{}
	}
	if c.DietaryTags == nil {
		c.DietaryTags = []DietaryTag{}
	}
	return c
}

func (r Recipe) HasTag(tag DietaryTag) bool {
	return slices.Contains(r.DietaryTags, tag)
}

// HasAllTags reports whether every tag is present on the recipe
func (r Recipe) HasAllTags(tags []DietaryTag) bool {
	for _, t := range tags {
		if !r.HasTag(t) {
			return false
		}
	}
	return true
}
