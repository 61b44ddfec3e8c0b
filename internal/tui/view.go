package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/recipeplanner/internal/constants"
	"github.com/julianstephens/recipeplanner/internal/search"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateRecipes:
		content = m.viewRecipes()
	case constants.StatePlanner:
		content = docStyle.Render(m.planGrid.View())
	case constants.StateShopping:
		content = docStyle.Render(m.shoppingList.View())
	case constants.StateRecipeForm, constants.StateFilterForm, constants.StateSlotPicker:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range []string{"Recipes", "Planner", "Shopping"} {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewRecipes() string {
	if !m.filterActive() {
		return docStyle.Render(m.recipeList.View())
	}
	var parts []string
	if m.query.Term != "" {
		parts = append(parts, fmt.Sprintf("%q", m.query.Term))
	}
	if m.query.Category != "" && m.query.Category != search.AllCategories {
		parts = append(parts, m.query.Category)
	}
	for _, t := range m.query.Tags {
		parts = append(parts, string(t))
	}
	header := filterStyle.Render(fmt.Sprintf("Filter: %s (%d shown)", strings.Join(parts, " · "), m.recipeList.Len()))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.recipeList.View()))
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), "", view)
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.deleteName)),
			"Meal plan slots using it will show as empty.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
