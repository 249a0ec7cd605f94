// Package tui is the interactive terminal front end: a person table, a detail
// pane and modal dialogs, all driven through internal/flow.
package tui

import (
	"contacts/internal/people"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI on st and blocks until the user quits.
func Run(st *people.Store, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m := newAppModel(st, opts)
	defer m.close()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
