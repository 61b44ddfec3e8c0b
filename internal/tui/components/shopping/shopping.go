package shopping

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/recipes"
)

var (
	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "check off"),
		),
	}
}

// Model is a checklist over the aggregated shopping list. Checked items are
// view state only and survive a refresh while their key is still listed.
type Model struct {
	items   []models.ShoppingItem
	checked map[string]bool
	cursor  int
	keys    KeyMap
}

func New() Model {
	return Model{
		checked: make(map[string]bool),
		keys:    DefaultKeyMap(),
	}
}

func (m *Model) SetList(list *models.ShoppingList) {
	m.items = list.Items()
	present := make(map[string]bool, len(m.items))
	for _, it := range m.items {
		present[it.Key] = true
	}
	for k := range m.checked {
		if !present[k] {
			delete(m.checked, k)
		}
	}
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Checked(key string) bool {
	return m.checked[key]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	msg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		k := m.items[m.cursor].Key
		if m.checked[k] {
			delete(m.checked, k)
		} else {
			m.checked[k] = true
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return "\n  Your shopping list is empty.\n  Assign recipes on the Planner tab to fill it."
	}

	var b strings.Builder
	done := 0
	for i, it := range m.items {
		box := "[ ]"
		style := itemStyle
		if m.checked[it.Key] {
			box = "[x]"
			style = checkedStyle
			done++
		}
		qty := recipes.FormatQuantity(it.Quantity)
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		line := fmt.Sprintf("%s %s: %s", box, it.Key, qty)
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}
	b.WriteString(fmt.Sprintf("\n  %d of %d checked", done, len(m.items)))
	return b.String()
}
