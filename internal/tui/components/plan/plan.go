package plan

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/recipeplanner/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(11)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 1)

	weekStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// PickSlotMsg asks for a recipe to put in a slot
type PickSlotMsg struct {
	Day  models.DayOfWeek
	Meal models.MealType
}

type ClearSlotMsg struct {
	Day  models.DayOfWeek
	Meal models.MealType
}

type ResetPlanMsg struct{}

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding
	Clear key.Binding
	Reset key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev meal"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next meal"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "choose recipe"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace", "delete", "c"),
			key.WithHelp("c", "clear slot"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "new week"),
		),
	}
}

// Model is the 7x3 week grid. A slot whose recipe no longer resolves renders
// as empty.
type Model struct {
	Plan    models.MealPlan
	resolve func(id string) (models.Recipe, bool)
	keys    KeyMap
	day     int
	meal    int
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{
		keys:    DefaultKeyMap(),
		resolve: func(string) (models.Recipe, bool) { return models.Recipe{}, false },
		width:   width,
		height:  height,
	}
}

func (m *Model) SetPlan(plan models.MealPlan, resolve func(id string) (models.Recipe, bool)) {
	m.Plan = plan
	m.resolve = resolve
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// Cursor returns the highlighted slot
func (m Model) Cursor() (models.DayOfWeek, models.MealType) {
	return models.Week()[m.day], models.MealTypes()[m.meal]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	msg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	days, meals := len(models.Week()), len(models.MealTypes())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.day = (m.day - 1 + days) % days
	case key.Matches(msg, m.keys.Down):
		m.day = (m.day + 1) % days
	case key.Matches(msg, m.keys.Left):
		m.meal = (m.meal - 1 + meals) % meals
	case key.Matches(msg, m.keys.Right):
		m.meal = (m.meal + 1) % meals
	case key.Matches(msg, m.keys.Pick):
		day, meal := m.Cursor()
		return m, func() tea.Msg { return PickSlotMsg{Day: day, Meal: meal} }
	case key.Matches(msg, m.keys.Clear):
		day, meal := m.Cursor()
		return m, func() tea.Msg { return ClearSlotMsg{Day: day, Meal: meal} }
	case key.Matches(msg, m.keys.Reset):
		return m, func() tea.Msg { return ResetPlanMsg{} }
	}
	return m, nil
}

// SlotLabel is the recipe name shown for a slot, "" when it shows as empty
func (m Model) SlotLabel(day models.DayOfWeek, meal models.MealType) string {
	id := m.Plan.Slot(day, meal)
	if id == "" {
		return ""
	}
	r, ok := m.resolve(id)
	if !ok {
		return ""
	}
	return r.Name
}

func (m Model) View() string {
	colWidth := 22
	if m.width > 0 {
		if w := (m.width - 11) / 3; w > 12 {
			colWidth = min(w, 32)
		}
	}

	var b strings.Builder
	if len(m.Plan.WeekStartDate) >= 10 {
		b.WriteString(weekStyle.Render("Week of " + m.Plan.WeekStartDate[:10]))
		b.WriteString("\n\n")
	}

	header := []string{dayStyle.Render("")}
	for _, meal := range models.MealTypes() {
		header = append(header, headerStyle.Width(colWidth).Padding(0, 1).Render(strings.ToUpper(string(meal[:1]))+string(meal[1:])))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for di, day := range models.Week() {
		row := []string{dayStyle.Render(string(day))}
		for mi, meal := range models.MealTypes() {
			label := m.SlotLabel(day, meal)
			style := cellStyle
			if label == "" {
				label = "-"
				style = emptyStyle
			}
			if di == m.day && mi == m.meal {
				style = cursorStyle
			}
			row = append(row, style.Width(colWidth).MaxWidth(colWidth).Render(truncate(label, colWidth-2)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
