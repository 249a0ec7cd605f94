package tui

import (
	"time"

	"contacts/internal/people"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			cmd = m.updateModal(msg)
		} else {
			cmd = m.updateMain(msg)
		}
	}

	seq := m.minibufferSeq
	m.afterFlow()
	if m.minibufferSeq != seq {
		cmd = tea.Batch(cmd, clearMinibufferAfter(m.minibufferSeq))
	}
	return m, cmd
}

// afterFlow applies what the flow callbacks recorded while handling a message.
func (m *appModel) afterFlow() {
	for _, c := range m.ui.drainChanges() {
		switch c.Kind {
		case people.Added:
			m.showMinibuffer("Added " + emptyAs(c.Person.DisplayName(), "person"))
		case people.Removed:
			m.showMinibuffer("Deleted " + emptyAs(c.Person.DisplayName(), "person"))
		}
	}
	if m.ui.rowsStale {
		m.refreshRows()
	}
	m.syncModal()
}

func (m *appModel) updateMain(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "n":
		m.overview.NewRequested()
		return nil
	case "e", "enter":
		m.overview.EditRequested()
		return nil
	case "d", "delete":
		m.overview.DeleteRequested()
		return nil
	case "?":
		m.modal = modalHelp
		return nil
	case "esc":
		m.overview.SelectionChanged(-1)
		return nil
	case " ":
		if len(m.peopleList.Items()) > 0 {
			m.overview.SelectionChanged(m.peopleList.Index())
		}
		return nil
	}

	if !isNavKey(msg.String()) || len(m.peopleList.Items()) == 0 {
		return nil
	}
	// The first navigation key selects the row under the cursor instead of moving.
	if _, ok := m.overview.Selected(); !ok {
		m.overview.SelectionChanged(m.peopleList.Index())
		return nil
	}
	var cmd tea.Cmd
	m.peopleList, cmd = m.peopleList.Update(msg)
	m.overview.SelectionChanged(m.peopleList.Index())
	return cmd
}

func (m *appModel) updateModal(msg tea.KeyMsg) tea.Cmd {
	switch m.modal {
	case modalEditPerson:
		return m.updateEditModal(msg)

	case modalWarning:
		switch msg.String() {
		case "enter", "esc", " ", "ctrl+g", "q":
			m.ui.warning = nil
			m.closeModal()
		}
		return nil

	case modalConfirmDelete:
		answer, decided := false, false
		switch msg.String() {
		case "tab", "shift+tab", "left", "right", "h", "l":
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
		case "enter":
			answer, decided = m.confirmFocus == confirmFocusConfirm, true
		case "y":
			answer, decided = true, true
		case "n", "esc", "ctrl+g":
			answer, decided = false, true
		}
		if decided {
			pending := m.ui.confirm
			m.ui.confirm = nil
			m.closeModal()
			if pending != nil && pending.done != nil {
				pending.done(answer)
			}
		}
		return nil

	case modalHelp:
		switch msg.String() {
		case "esc", "?", "q", "enter", "ctrl+g":
			m.closeModal()
		}
		return nil
	}
	return nil
}

func (m *appModel) updateEditModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.cancelEditModal()
		return nil
	case "ctrl+s":
		m.submitEditModal()
		return nil
	case "tab", "down":
		m.moveFormFocus(1)
		return nil
	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return nil
	case "enter":
		switch {
		case m.formFocus == formFocusCancel:
			m.cancelEditModal()
		case m.formFocus == formFocusSave || m.formFocus == len(m.inputs)-1:
			m.submitEditModal()
		default:
			m.moveFormFocus(1)
		}
		return nil
	}

	if m.formFocus < 0 || m.formFocus >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.formFocus], cmd = m.inputs[m.formFocus].Update(msg)
	return cmd
}

func clearMinibufferAfter(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}
