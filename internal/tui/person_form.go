package tui

import (
	"strings"

	"contacts/internal/dateutil"
	"contacts/internal/flow"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(flow.Fields))
	for i, f := range flow.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		in.Placeholder = f.Label()
		switch f {
		case flow.FieldPostalCode:
			in.CharLimit = 10
			in.Placeholder = "e.g. 8001"
		case flow.FieldBirthday:
			in.CharLimit = len(dateutil.Pattern)
			in.Placeholder = dateutil.Pattern
		}
		in.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent)
		inputs[i] = in
	}
	return inputs
}

// openEditModal shows the session's form, loading its values into the inputs.
func (m *appModel) openEditModal() {
	m.modal = modalEditPerson
	for i, f := range flow.Fields {
		m.inputs[i].SetValue(m.ui.form.Value(f))
		m.inputs[i].CursorEnd()
	}
	m.formFocus = 0
	m.applyFormFocus()
}

func (m *appModel) applyFormFocus() {
	for i := range m.inputs {
		if i == m.formFocus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *appModel) moveFormFocus(delta int) {
	m.formFocus = (m.formFocus + delta + formFocusCount) % formFocusCount
	m.applyFormFocus()
}

// submitEditModal copies the inputs into the form and submits it. On success the
// modal closes; on validation failure it stays open with focus on the first bad field.
func (m *appModel) submitEditModal() {
	form := m.ui.form
	if form == nil {
		m.closeModal()
		return
	}
	for i, f := range flow.Fields {
		form.Set(f, m.inputs[i].Value())
	}
	ok, errs := form.Submit()
	if !ok {
		m.log.Debug("edit rejected", "title", form.Title(), "errors", len(errs))
		for i, f := range flow.Fields {
			if errs.Has(f) {
				m.formFocus = i
				break
			}
		}
		m.applyFormFocus()
		return
	}
	m.ui.form = nil
	m.closeModal()
	m.showMinibuffer("Saved " + emptyAs(form.Target().DisplayName(), "person"))
}

func (m *appModel) cancelEditModal() {
	if m.ui.form != nil {
		m.ui.form.Cancel()
		m.ui.form = nil
	}
	m.closeModal()
}

func (m appModel) renderEditModal() string {
	form := m.ui.form
	if form == nil {
		return ""
	}
	bodyW := modalBodyWidth(m.width)
	errs := form.Errors()

	var lines []string
	if len(errs) > 0 {
		lines = append(lines,
			styleError().Bold(true).Render("Please correct invalid fields:"),
			styleError().Width(bodyW).Render(errs.Summary()),
			"",
		)
	}
	for i, f := range flow.Fields {
		label := f.Label()
		labelStyle := styleMuted()
		if i == m.formFocus {
			labelStyle = lipgloss.NewStyle().Bold(true)
		}
		if errs.Has(f) {
			labelStyle = styleError().Bold(true)
			label += " *"
		}
		lines = append(lines, labelStyle.Render(label), renderInputLine(bodyW, m.inputs[i].View()))
	}

	focus := confirmFocusNone
	switch m.formFocus {
	case formFocusSave:
		focus = confirmFocusConfirm
	case formFocusCancel:
		focus = confirmFocusCancel
	}
	lines = append(lines,
		"",
		renderButtons("Save", "Cancel", focus),
		"",
		styleMuted().Width(bodyW).Render("tab: next   enter: next/save   ctrl+s: save   esc: cancel"),
	)
	return renderModalBox(m.width, form.Title(), strings.Join(lines, "\n"))
}
