package tui

import (
	"contacts/internal/flow"
	"contacts/internal/model"
	"contacts/internal/people"
)

// session is the pointer-held half of the model. Flow callbacks (Editor, Warner,
// Confirmer, store subscriptions) land here, and appModel picks the results up
// when it finishes handling the current message.
type session struct {
	form    *flow.EditForm
	warning *flow.Warning
	confirm *pendingConfirm

	rowsStale bool
	changes   []people.Change
}

type pendingConfirm struct {
	c    flow.Confirmation
	done func(ok bool)
}

func (s *session) Edit(p *model.Person, title string, done func(committed bool)) {
	s.form = flow.NewEditForm(title, p, done)
}

func (s *session) Warn(w flow.Warning) {
	s.warning = &w
}

func (s *session) Confirm(c flow.Confirmation, done func(ok bool)) {
	s.confirm = &pendingConfirm{c: c, done: done}
}

func (s *session) storeChanged(c people.Change) {
	s.rowsStale = true
	s.changes = append(s.changes, c)
}

// drainChanges returns and forgets the changes seen since the last call.
func (s *session) drainChanges() []people.Change {
	out := s.changes
	s.changes = nil
	return out
}

var (
	_ flow.Editor    = (*session)(nil)
	_ flow.Warner    = (*session)(nil)
	_ flow.Confirmer = (*session)(nil)
)
