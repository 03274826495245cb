package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunDashboard starts the interactive work dashboard. The identity
// subscription acquired by the model is released on every exit path.
func RunDashboard() error {
	model := NewDashboardModel()
	defer model.teardown()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
