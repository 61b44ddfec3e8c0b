package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/planner"
	"github.com/julianstephens/recipeplanner/internal/search"
	"github.com/julianstephens/recipeplanner/internal/tui/components/plan"
	"github.com/julianstephens/recipeplanner/internal/tui/components/recipelist"
	"github.com/julianstephens/recipeplanner/internal/tui/components/shopping"
)

const tabCount = 3

type Model struct {
	session       *planner.Session
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	recipeList    recipelist.Model
	planGrid      plan.Model
	shoppingList  shopping.Model
	form          *huh.Form
	recipeForm    *RecipeFormModel
	filterForm    *FilterFormModel
	slotForm      *SlotFormModel
	editingID     string // empty while adding
	slotDay       models.DayOfWeek
	slotMeal      models.MealType
	deleteID      string
	deleteName    string
	query         search.Query
	formError     string
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(session *planner.Session) Model {
	m := Model{
		session:      session,
		state:        constants.StateRecipes,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		recipeList:   recipelist.New(nil, 0, 0),
		planGrid:     plan.New(0, 0),
		shoppingList: shopping.New(),
		query:        search.Query{Category: search.AllCategories},
	}
	m.refresh()
	return m
}

// refresh reloads every view from the session
func (m *Model) refresh() {
	m.recipeList.SetRecipes(m.session.Search(m.query), m.filterActive())
	m.planGrid.SetPlan(m.session.Plan(), m.session.Recipe)
	m.shoppingList.SetList(m.session.ShoppingList())
}

func (m Model) filterActive() bool {
	return m.query.Term != "" ||
		(m.query.Category != "" && m.query.Category != search.AllCategories) ||
		len(m.query.Tags) > 0
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateRecipes:
		rk := recipelist.DefaultKeyMap()
		keys = append(keys, rk.Add, rk.Edit, rk.Delete, rk.Filter)
	case constants.StatePlanner:
		pk := m.planGrid.Keys()
		keys = append(keys, pk.Pick, pk.Clear)
	case constants.StateShopping:
		keys = append(keys, m.shoppingList.Keys().Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateRecipes:
		rk := recipelist.DefaultKeyMap()
		actions = []key.Binding{rk.Add, rk.Edit, rk.Delete, rk.Filter, rk.ClearFilter}
	case constants.StatePlanner:
		pk := m.planGrid.Keys()
		actions = []key.Binding{pk.Up, pk.Down, pk.Left, pk.Right, pk.Pick, pk.Clear, pk.Reset}
	case constants.StateShopping:
		sk := m.shoppingList.Keys()
		actions = []key.Binding{sk.Up, sk.Down, sk.Toggle}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
