package tui

import "github.com/charmbracelet/lipgloss"

// detailHeight is the space reserved under the list for the help pane.
const detailHeight = 6

var (
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginTop(1)
	detailBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(80)
)
