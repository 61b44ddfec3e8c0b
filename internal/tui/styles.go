package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("173")
	muted  = lipgloss.Color("243")

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(accent).
			Padding(0, 2).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(muted).
				Border(lipgloss.HiddenBorder(), false, false, true, false).
				Padding(0, 2)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			PaddingLeft(2)

	filterStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
