package tui

import (
	"strings"

	"contacts/internal/flow"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	return clampInt(width-10, 28, 64)
}

// renderModalBox draws a titled box whose body is modalBodyWidth(width) columns wide.
func renderModalBox(width int, title string, body string) string {
	bodyW := modalBodyWidth(width)
	boxW := bodyW + 2

	header := lipgloss.NewStyle().
		Width(boxW).
		Padding(0, 1).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(title)

	content := lipgloss.NewStyle().
		Width(boxW).
		Padding(1, 1).
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

// renderButtons renders a confirm/cancel pair with the focused one highlighted.
// focus may be neither (e.g. while a form field has focus).
func renderButtons(confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting bordered
	// components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	if cancelLabel == "" {
		return confirm
	}
	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   y/n   esc: cancel")

	content := strings.Join([]string{
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		renderButtons(confirmLabel, cancelLabel, focus),
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func renderWarningModal(width int, w flow.Warning) string {
	bodyW := modalBodyWidth(width)
	header := lipgloss.NewStyle().Bold(true).Foreground(colorWarnFg).Render("! " + w.Header)
	content := strings.Join([]string{
		header,
		"",
		lipgloss.NewStyle().Width(bodyW).Render(w.Content),
		"",
		renderButtons("OK", "", confirmFocusConfirm),
		"",
		styleMuted().Width(bodyW).Render("enter/esc: dismiss"),
	}, "\n")
	return renderModalBox(width, w.Title, content)
}
