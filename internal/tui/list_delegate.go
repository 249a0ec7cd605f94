package tui

import (
	"fmt"
	"io"
	"strings"

	"contacts/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type personItem struct {
	person *model.Person
}

func (i personItem) FilterValue() string { return i.person.DisplayName() }

// personRowDelegate renders one person per line as two columns (first name, last name).
// The highlight follows the overview selection, not just the list cursor.
type personRowDelegate struct {
	selection func() (int, bool)

	normal    lipgloss.Style
	cursor    lipgloss.Style
	highlight lipgloss.Style
}

func newPersonRowDelegate(selection func() (int, bool)) personRowDelegate {
	return personRowDelegate{
		selection: selection,
		normal:    lipgloss.NewStyle(),
		cursor:    lipgloss.NewStyle().Foreground(colorCursorFg),
		highlight: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d personRowDelegate) Height() int  { return 1 }
func (d personRowDelegate) Spacing() int { return 0 }
func (d personRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d personRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}
	it, ok := item.(personItem)
	if !ok {
		return
	}

	style := d.normal
	marker := "  "
	if sel, ok := d.selection(); ok && sel == index {
		style = d.highlight
		marker = "> "
	} else if !ok && index == m.Index() {
		style = d.cursor
	}

	fmt.Fprint(w, style.Render(marker+twoColumns(it.person.FirstName, it.person.LastName, contentW-2)))
}

// twoColumns lays a and b out in two equal columns filling width.
func twoColumns(a, b string, width int) string {
	if width < 2 {
		return fitWidth(a, width)
	}
	left := width / 2
	return fitWidth(a, left) + fitWidth(b, width-left)
}

func renderTableHeader(width int) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorChromeFg).
		Render("  " + twoColumns("First Name", "Last Name", width-2))
}

func newPeopleList(delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "People"
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Filtering would decouple the list index from the store position.
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys()
	l.KeyMap.ForceQuit.SetKeys()
	l.KeyMap.ShowFullHelp.SetKeys()
	l.KeyMap.CloseFullHelp.SetKeys()
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

func peopleItems(ps []*model.Person) []list.Item {
	items := make([]list.Item, 0, len(ps))
	for _, p := range ps {
		items = append(items, personItem{person: p})
	}
	return items
}

func isNavKey(s string) bool {
	switch strings.ToLower(s) {
	case "up", "down", "k", "j", "ctrl+p", "ctrl+n", "home", "end", "g", "pgup", "pgdown":
		return true
	}
	return false
}
