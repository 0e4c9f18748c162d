package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition. Update returns the View so implementations
// may swap themselves out, mirroring tea.Model.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
