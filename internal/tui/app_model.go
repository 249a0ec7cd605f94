package tui

import (
	"log/slog"
	"strings"

	"contacts/internal/flow"
	"contacts/internal/people"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

// Options configures the interactive TUI.
type Options struct {
	// ConfirmDelete asks before removing a person.
	ConfirmDelete bool
	// Theme is auto|light|dark.
	Theme  string
	Logger *slog.Logger
}

type appModel struct {
	store    *people.Store
	overview *flow.Overview
	ui       *session
	log      *slog.Logger

	width  int
	height int

	peopleList list.Model

	modal        modalKind
	inputs       []textinput.Model
	formFocus    int
	confirmFocus confirmModalFocus

	minibufferText string
	minibufferSeq  int

	unsubscribe func()
}

const (
	defaultWidth  = 100
	defaultHeight = 30
	// header + table header + blank + footer lines around the body.
	chromeLines = 5
)

func newAppModel(st *people.Store, opts Options) appModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ui := &session{}
	var ovOpts []flow.OverviewOption
	ovOpts = append(ovOpts, flow.WithLogger(log))
	if opts.ConfirmDelete {
		ovOpts = append(ovOpts, flow.WithConfirmer(ui))
	}
	ov := flow.NewOverview(st, ui, ui, ovOpts...)

	m := appModel{
		store:    st,
		overview: ov,
		ui:       ui,
		log:      log,
		width:    defaultWidth,
		height:   defaultHeight,
		inputs:   newFormInputs(),
	}
	m.unsubscribe = st.Subscribe(ui.storeChanged)
	m.peopleList = newPeopleList(newPersonRowDelegate(ov.Selected))
	m.peopleList.SetItems(peopleItems(st.All()))
	m.resizeLists()
	return m
}

// close detaches the model from the store.
func (m appModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.overview.Close()
}

func (m *appModel) bodyHeight() int {
	return clampInt(m.height-chromeLines, 3, 1<<16)
}

func (m *appModel) listWidth() int {
	return clampInt(m.width/2, 24, 1<<16)
}

func (m *appModel) resizeLists() {
	m.peopleList.SetSize(m.listWidth(), m.bodyHeight())
}

// refreshRows rebuilds the table rows from the store and keeps the cursor on the selection.
func (m *appModel) refreshRows() {
	m.ui.rowsStale = false
	m.peopleList.SetItems(peopleItems(m.store.All()))
	if i, ok := m.overview.Selected(); ok {
		m.peopleList.Select(i)
		return
	}
	if n := len(m.peopleList.Items()); n > 0 && m.peopleList.Index() >= n {
		m.peopleList.Select(n - 1)
	}
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.formFocus = 0
	m.confirmFocus = confirmFocusConfirm
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
}

// syncModal opens whatever the flow callbacks asked for.
func (m *appModel) syncModal() {
	if m.modal != modalNone {
		return
	}
	switch {
	case m.ui.warning != nil:
		m.modal = modalWarning
	case m.ui.confirm != nil:
		m.modal = modalConfirmDelete
		m.confirmFocus = confirmFocusConfirm
	case m.ui.form != nil && m.ui.form.Open():
		m.openEditModal()
	}
}

func (m *appModel) showMinibuffer(s string) {
	m.minibufferText = strings.TrimSpace(s)
	m.minibufferSeq++
}

func emptyAs(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
