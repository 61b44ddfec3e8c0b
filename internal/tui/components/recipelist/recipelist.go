package recipelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/recipeplanner/internal/models"
)

type AddRecipeMsg struct{}

type EditRecipeMsg struct {
	Recipe models.Recipe
}

type DeleteRecipeMsg struct {
	ID   string
	Name string
}

type FilterRecipesMsg struct{}

type ClearFilterMsg struct{}

type Item struct {
	Recipe models.Recipe
}

func (i Item) Title() string { return i.Recipe.Name }

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %d ingredients", i.Recipe.Category, len(i.Recipe.Ingredients))
	if len(i.Recipe.DietaryTags) > 0 {
		tags := make([]string, len(i.Recipe.DietaryTags))
		for j, t := range i.Recipe.DietaryTags {
			tags[j] = string(t)
		}
		desc += " | " + strings.Join(tags, ", ")
	}
	return desc
}

func (i Item) FilterValue() string { return i.Recipe.Name }

type KeyMap struct {
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filter"),
		),
	}
}

// Model lists the recipes that pass the current filter. Filtering happens
// in the search package; the list's own fuzzy filter is disabled.
type Model struct {
	list     list.Model
	keys     KeyMap
	filtered bool
}

func New(recipes []models.Recipe, width, height int) Model {
	l := list.New(toItems(recipes), list.NewDefaultDelegate(), width, height)
	l.Title = "Recipes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Filter}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Filter, keys.ClearFilter}
	}

	return Model{list: l, keys: keys}
}

func toItems(recipes []models.Recipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		items[i] = Item{Recipe: r}
	}
	return items
}

// SetRecipes replaces the shown recipes; filtered marks them as a filter result
func (m *Model) SetRecipes(recipes []models.Recipe, filtered bool) {
	m.list.SetItems(toItems(recipes))
	m.filtered = filtered
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Selected() (models.Recipe, bool) {
	i, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Recipe{}, false
	}
	return i.Recipe, true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRecipeMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditRecipeMsg{Recipe: r} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteRecipeMsg{ID: r.ID, Name: r.Name} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			return m, func() tea.Msg { return FilterRecipesMsg{} }
		case key.Matches(msg, m.keys.ClearFilter):
			return m, func() tea.Msg { return ClearFilterMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		if m.filtered {
			return "\n  No recipes match the filter.\n  Press 'f' to change it or 'x' to clear it."
		}
		return "\n  No recipes yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
