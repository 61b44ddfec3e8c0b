package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/planner"
	"github.com/julianstephens/recipeplanner/internal/search"
	"github.com/julianstephens/recipeplanner/internal/tui/components/plan"
	"github.com/julianstephens/recipeplanner/internal/tui/components/recipelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := max(msg.Height-6, 1)
		m.recipeList.SetSize(msg.Width-4, contentHeight)
		m.planGrid.SetSize(msg.Width-4, contentHeight)
		return m, nil
	}

	switch m.state {
	case constants.StateRecipeForm, constants.StateFilterForm, constants.StateSlotPicker:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case recipelist.AddRecipeMsg:
		m.editingID = ""
		m.recipeForm = newRecipeFormModel(models.Recipe{})
		return m.openForm(constants.StateRecipeForm, NewRecipeForm(m.recipeForm))

	case recipelist.EditRecipeMsg:
		m.editingID = msg.Recipe.ID
		m.recipeForm = newRecipeFormModel(msg.Recipe)
		return m.openForm(constants.StateRecipeForm, NewRecipeForm(m.recipeForm))

	case recipelist.DeleteRecipeMsg:
		m.deleteID = msg.ID
		m.deleteName = msg.Name
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case recipelist.FilterRecipesMsg:
		m.filterForm = &FilterFormModel{
			Term:     m.query.Term,
			Category: m.query.Category,
			Tags:     append([]models.DietaryTag(nil), m.query.Tags...),
		}
		if m.filterForm.Category == "" {
			m.filterForm.Category = search.AllCategories
		}
		return m.openForm(constants.StateFilterForm, NewFilterForm(m.filterForm))

	case recipelist.ClearFilterMsg:
		m.query = search.Query{Category: search.AllCategories}
		m.refresh()
		return m, nil

	case plan.PickSlotMsg:
		choices := m.session.PlannerChoices(msg.Meal)
		m.slotDay, m.slotMeal = msg.Day, msg.Meal
		m.slotForm = &SlotFormModel{RecipeID: m.session.Plan().Slot(msg.Day, msg.Meal)}
		if _, ok := m.session.Recipe(m.slotForm.RecipeID); !ok {
			m.slotForm.RecipeID = ""
		}
		return m.openForm(constants.StateSlotPicker, NewSlotForm(m.slotForm, msg.Day, msg.Meal, choices))

	case plan.ClearSlotMsg:
		m.report(m.session.ClearSlot(msg.Day, msg.Meal))
		m.refresh()
		return m, nil

	case plan.ResetPlanMsg:
		_, err := m.session.ResetPlan()
		m.report(err)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateRecipes:
		m.recipeList, cmd = m.recipeList.Update(msg)
	case constants.StatePlanner:
		m.planGrid, cmd = m.planGrid.Update(msg)
	case constants.StateShopping:
		m.shoppingList, cmd = m.shoppingList.Update(msg)
	}
	return m, cmd
}

func (m Model) openForm(state constants.SessionState, form *huh.Form) (tea.Model, tea.Cmd) {
	if m.state < tabCount {
		m.previousState = m.state
	}
	m.form = form
	m.formError = ""
	m.state = state
	return m, m.form.Init()
}

func (m Model) closeForm() Model {
	m.form = nil
	m.formError = ""
	m.state = m.previousState
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		return m.closeForm(), nil
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case constants.StateRecipeForm:
		err := m.saveRecipe()
		if err != nil && !errors.Is(err, planner.ErrPersist) {
			// Keep the user's input and show what was rejected.
			m.form = NewRecipeForm(m.recipeForm)
			m.formError = err.Error()
			return m, m.form.Init()
		}
		m.report(err)
	case constants.StateFilterForm:
		m.query = search.Query{
			Term:     m.filterForm.Term,
			Category: m.filterForm.Category,
			Tags:     m.filterForm.Tags,
		}
	case constants.StateSlotPicker:
		var err error
		if m.slotForm.RecipeID == "" {
			err = m.session.ClearSlot(m.slotDay, m.slotMeal)
		} else {
			err = m.session.Assign(m.slotDay, m.slotMeal, m.slotForm.RecipeID)
		}
		m.report(err)
	}

	m.refresh()
	return m.closeForm(), nil
}

func (m *Model) saveRecipe() error {
	draft, err := m.recipeForm.Draft()
	if err != nil {
		return err
	}
	if m.editingID == "" {
		r, err := m.session.AddRecipe(draft)
		if err == nil {
			m.status = fmt.Sprintf("Added %s", r.Name)
		}
		return err
	}
	if _, err := m.session.EditRecipe(draft.WithID(m.editingID)); err != nil {
		return err
	}
	m.status = fmt.Sprintf("Saved %s", draft.Name)
	return nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		_, err := m.session.DeleteRecipe(m.deleteID)
		m.report(err)
		if err == nil {
			m.status = fmt.Sprintf("Deleted %s", m.deleteName)
		}
		m.refresh()
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.deleteID, m.deleteName = "", ""
	m.state = m.previousState
	return m, nil
}

// report surfaces a failed write. The change stays applied in memory.
func (m *Model) report(err error) {
	if err == nil {
		return
	}
	logger.Error("TUI action failed", "error", err)
	m.status = "⚠ " + err.Error()
}
