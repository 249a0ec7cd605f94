// Package flow holds the contact-list control flow: selection, detail
// projection, delete, and the add/edit form, independent of any UI toolkit.
//
// A front end drives an Overview with user actions and supplies an Editor (the
// modal form) and a Warner (modal warnings). Both may answer synchronously or
// later; Overview only acts once the callback fires.
package flow

import (
	"log/slog"

	"contacts/internal/model"
	"contacts/internal/people"
)

// Editor shows the add/edit form for p. It must call done exactly once:
// true after the form committed its values into p, false if it was cancelled.
type Editor interface {
	Edit(p *model.Person, title string, done func(committed bool))
}

// Warner shows a modal warning.
type Warner interface {
	Warn(w Warning)
}

// Confirmer asks the user a yes/no question. Optional; see WithConfirmer.
type Confirmer interface {
	Confirm(c Confirmation, done func(ok bool))
}

type Warning struct {
	Title   string
	Header  string
	Content string
}

type Confirmation struct {
	Title  string
	Prompt string
}

var (
	WarnNoEntrySelected = Warning{
		Title:   "Warning",
		Header:  "No Entry Selected",
		Content: "Please select a person in the table before attempting to delete an entry.",
	}
	WarnNoPersonSelected = Warning{
		Title:   "No Selection",
		Header:  "No Person Selected",
		Content: "Please select a person in the table.",
	}
)

const (
	TitleNewPerson  = "New Person"
	TitleEditPerson = "Edit Person"
)

const noSelection = -1

// Overview is the table + detail controller.
type Overview struct {
	store     *people.Store
	editor    Editor
	warner    Warner
	confirmer Confirmer
	log       *slog.Logger

	selected    int
	detail      model.Detail
	unsubscribe func()
}

type OverviewOption func(*Overview)

// WithConfirmer asks c before every delete. Without it deletes are immediate.
func WithConfirmer(c Confirmer) OverviewOption {
	return func(o *Overview) { o.confirmer = c }
}

func WithLogger(l *slog.Logger) OverviewOption {
	return func(o *Overview) {
		if l != nil {
			o.log = l
		}
	}
}

// NewOverview attaches to store. Call Close to detach.
func NewOverview(store *people.Store, editor Editor, warner Warner, opts ...OverviewOption) *Overview {
	o := &Overview{
		store:    store,
		editor:   editor,
		warner:   warner,
		log:      slog.New(slog.DiscardHandler),
		selected: noSelection,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.unsubscribe = store.Subscribe(o.storeChanged)
	return o
}

func (o *Overview) Close() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}

// Selected returns the selected index, or ok=false when nothing is selected.
func (o *Overview) Selected() (index int, ok bool) {
	if o.selected == noSelection {
		return noSelection, false
	}
	return o.selected, true
}

// SelectedPerson returns the live selected record, or nil.
func (o *Overview) SelectedPerson() *model.Person {
	if o.selected == noSelection {
		return nil
	}
	p, err := o.store.At(o.selected)
	if err != nil {
		return nil
	}
	return p
}

// Detail is the projection shown in the detail pane.
func (o *Overview) Detail() model.Detail { return o.detail }

// SelectionChanged selects index i. Negative or out-of-range means no selection.
func (o *Overview) SelectionChanged(i int) {
	if i < 0 || i >= o.store.Len() {
		o.clearSelection()
		return
	}
	o.selected = i
	o.detail = model.DetailOf(o.SelectedPerson())
}

func (o *Overview) clearSelection() {
	o.selected = noSelection
	o.detail = model.Detail{}
}

// DeleteRequested removes the selected person, or warns when nothing is selected.
func (o *Overview) DeleteRequested() {
	i, ok := o.Selected()
	if !ok {
		o.warn(WarnNoEntrySelected)
		return
	}
	if o.confirmer == nil {
		o.deleteAt(i)
		return
	}
	p := o.SelectedPerson()
	o.confirmer.Confirm(Confirmation{
		Title:  "Delete",
		Prompt: "Delete " + quoteName(p) + "?",
	}, func(yes bool) {
		if !yes {
			return
		}
		// The modal blocks other actions, but resolve by identity anyway.
		if j := o.store.IndexOf(p); j >= 0 {
			o.deleteAt(j)
		}
	})
}

func (o *Overview) deleteAt(i int) {
	p, err := o.store.RemoveAt(i)
	if err != nil {
		o.log.Error("delete person", "index", i, "err", err)
		return
	}
	o.log.Info("person deleted", "id", p.ID)
	o.clearSelection()
}

// EditRequested opens the editor on the selected person, or warns when nothing is selected.
func (o *Overview) EditRequested() {
	p := o.SelectedPerson()
	if p == nil {
		o.warn(WarnNoPersonSelected)
		return
	}
	o.editor.Edit(p, TitleEditPerson, func(committed bool) {
		if !committed {
			o.log.Debug("edit cancelled", "id", p.ID)
			return
		}
		i := o.store.IndexOf(p)
		if i < 0 {
			return
		}
		if err := o.store.Touch(i); err != nil {
			o.log.Error("announce edit", "id", p.ID, "err", err)
			return
		}
		o.log.Info("person edited", "id", p.ID)
		if o.selected == i {
			o.detail = model.DetailOf(p)
		}
	})
}

// NewRequested opens the editor on a blank person and appends it only if committed.
func (o *Overview) NewRequested() {
	tmp := model.NewPerson()
	o.editor.Edit(tmp, TitleNewPerson, func(committed bool) {
		if !committed {
			o.log.Debug("new person discarded")
			return
		}
		o.store.Add(tmp)
		o.log.Info("person created", "id", tmp.ID)
	})
}

func (o *Overview) storeChanged(c people.Change) {
	if o.selected == noSelection {
		return
	}
	switch c.Kind {
	case people.Removed:
		switch {
		case c.Index == o.selected:
			o.clearSelection()
		case c.Index < o.selected:
			o.selected--
		}
	case people.Updated:
		if c.Index == o.selected {
			o.detail = model.DetailOf(c.Person)
		}
	}
}

func (o *Overview) warn(w Warning) {
	o.log.Warn("user warning", "header", w.Header)
	if o.warner != nil {
		o.warner.Warn(w)
	}
}

func quoteName(p *model.Person) string {
	name := p.DisplayName()
	if name == "" {
		return "this person"
	}
	return `"` + name + `"`
}
