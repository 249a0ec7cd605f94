package tui

import (
	"fmt"
	"strings"

	"contacts/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Contacts") +
		styleMuted().Render(fmt.Sprintf("  %d %s", m.store.Len(), plural(m.store.Len(), "person", "people")))

	var body string
	switch m.modal {
	case modalEditPerson:
		body = m.centered(m.renderEditModal())
	case modalWarning:
		if m.ui.warning != nil {
			body = m.centered(renderWarningModal(m.width, *m.ui.warning))
		}
	case modalConfirmDelete:
		if m.ui.confirm != nil {
			body = m.centered(renderConfirmModal(m.width, m.ui.confirm.c.Title, m.ui.confirm.c.Prompt, "Delete", "Cancel", m.confirmFocus))
		}
	case modalHelp:
		body = m.centered(renderHelpModal(m.width))
	default:
		body = m.viewOverview()
	}

	footer := styleMuted().Render("n: new  e: edit  d: delete  ?: help  q: quit")
	if m.minibufferText != "" {
		footer = m.minibufferText
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m appModel) centered(s string) string {
	return lipgloss.Place(m.width, m.bodyHeight()+1, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) viewOverview() string {
	h := m.bodyHeight()
	leftW := m.listWidth()
	rightW := clampInt(m.width-leftW-2, 20, 1<<16)

	var left string
	if len(m.peopleList.Items()) == 0 {
		left = styleMuted().Render("No people yet. Press n to add one.")
	} else {
		left = m.peopleList.View()
	}
	left = renderTableHeader(leftW) + "\n" + normalizePane(left, leftW, h)

	right := renderDetail(m.overview.Detail(), rightW)
	right = normalizePane(right, rightW, h+1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderDetail draws the six labelled detail rows. An empty projection shows
// blank values, which is what "nothing selected" looks like.
func renderDetail(d model.Detail, width int) string {
	rows := []struct{ label, value string }{
		{"First Name", d.FirstName},
		{"Last Name", d.LastName},
		{"Street", d.Street},
		{"Postal Code", d.PostalCode},
		{"City", d.City},
		{"Birthday", d.Birthday},
	}
	labelW := 13
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(colorChromeFg).Render("Person Details")}
	for _, r := range rows {
		lines = append(lines, styleMuted().Render(fitWidth(r.label, labelW))+fitWidth(r.value, clampInt(width-labelW, 1, 1<<16)))
	}
	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
