package tui

import (
	"os"
	"strings"

	"contacts/internal/dateutil"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Keys

| Key | Action |
|---|---|
| ↑/↓, j/k | select a person |
| n | new person |
| e, enter | edit selected person |
| d, delete | delete selected person |
| esc | clear selection |
| ? | this help |
| q, ctrl+c | quit |

## Edit form

| Key | Action |
|---|---|
| tab, shift+tab | next / previous field |
| enter | next field; save on the last field |
| ctrl+s | save |
| esc | cancel |

Birthdays use the format **` + dateutil.Pattern + `**. Postal codes are whole numbers.
`

// renderMarkdown renders md for a terminal of the given width. On any renderer
// error the raw markdown is returned.
func renderMarkdown(md string, width int) string {
	style := "light"
	switch {
	case strings.TrimSpace(os.Getenv("NO_COLOR")) != "":
		style = "notty"
	case lipgloss.HasDarkBackground():
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func renderHelpModal(width int) string {
	bodyW := modalBodyWidth(width)
	body := renderMarkdown(helpMarkdown, bodyW)
	return renderModalBox(width, "Help", body+"\n\n"+styleMuted().Render("esc/?/q: close"))
}
