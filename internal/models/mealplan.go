package models

import (
	"fmt"
	"maps"
	"strings"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Week returns the days of a plan, Monday first
func Week() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseDayOfWeek accepts full or three-letter day names in any case
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Week() {
		name := strings.ToLower(string(d))
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid day: %q", s)
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes returns the slots of a day in serving order
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner}
}

func ParseMealType(s string) (MealType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range MealTypes() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid meal type: %q", s)
}

// DayMeals holds the recipe ids assigned to one day. An empty id is an
// unassigned slot.
type DayMeals struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}

// Slot returns the recipe id assigned to a meal
func (d DayMeals) Slot(meal MealType) string {
	switch meal {
	case MealBreakfast:
		return d.Breakfast
	case MealLunch:
		return d.Lunch
	case MealDinner:
		return d.Dinner
	}
	return ""
}

// SetSlot assigns a recipe id to a meal; an empty id clears it
func (d *DayMeals) SetSlot(meal MealType, recipeID string) bool {
	switch meal {
	case MealBreakfast:
		d.Breakfast = recipeID
	case MealLunch:
		d.Lunch = recipeID
	case MealDinner:
		d.Dinner = recipeID
	default:
		return false
	}
	return true
}

type MealPlan struct {
	ID            string                 `json:"id"`
	WeekStartDate string                 `json:"weekStartDate"`
	Meals         map[DayOfWeek]DayMeals `json:"meals"`
}

// NewMealPlan returns a plan with every day present and every slot empty
func NewMealPlan(id, weekStart string) MealPlan {
	meals := make(map[DayOfWeek]DayMeals, 7)
	for _, d := range Week() {
		meals[d] = DayMeals{}
	}
	return MealPlan{ID: id, WeekStartDate: weekStart, Meals: meals}
}

// Clone returns a copy that shares no map with p
func (p MealPlan) Clone() MealPlan {
	c := p
	c.Meals = maps.Clone(p.Meals)
	if c.Meals == nil {
		c.Meals = make(map[DayOfWeek]DayMeals)
	}
	return c
}

// Slot returns the recipe id assigned to (day, meal), or "" when the slot or
// the whole day is absent
func (p MealPlan) Slot(day DayOfWeek, meal MealType) string {
	return p.Meals[day].Slot(meal)
}
