// Package people holds the ordered, observable list of contacts.
//
// The application root owns exactly one Store for the process lifetime; views
// keep a reference to it and subscribe for changes instead of copying it.
// All methods are meant to be called from the single UI event loop; the store
// does no locking.
package people

import (
	"errors"
	"fmt"
	"log/slog"

	"contacts/internal/model"

	"github.com/google/uuid"
)

var ErrIndexOutOfRange = errors.New("index out of range")

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Updated
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change describes a single mutation. Index is the position the person was
// added at, removed from, or updated in place.
type Change struct {
	Kind   ChangeKind
	Index  int
	Person *model.Person
}

type subscriber struct {
	id int
	fn func(Change)
}

// Store is an ordered list of people with synchronous change notification.
// Insertion order is display order. No field is unique.
type Store struct {
	people []*model.Person
	subs   []subscriber
	nextID int
	log    *slog.Logger
}

// New returns an empty store. A nil logger discards log output.
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{log: log}
}

func (s *Store) Len() int { return len(s.people) }

// At returns the person at i. The pointer is live: mutating it mutates the store entry,
// and the caller must follow up with Touch so views learn about it.
func (s *Store) At(i int) (*model.Person, error) {
	if i < 0 || i >= len(s.people) {
		return nil, fmt.Errorf("person %d of %d: %w", i, len(s.people), ErrIndexOutOfRange)
	}
	return s.people[i], nil
}

// All returns the people in display order. The slice is a copy; the people are not.
func (s *Store) All() []*model.Person {
	out := make([]*model.Person, len(s.people))
	copy(out, s.people)
	return out
}

// IndexOf finds p by identity, not by value. Returns -1 when p is not in the store.
func (s *Store) IndexOf(p *model.Person) int {
	if p == nil {
		return -1
	}
	for i, q := range s.people {
		if q == p {
			return i
		}
	}
	return -1
}

// Add appends p and assigns it an ID if it has none.
func (s *Store) Add(p *model.Person) int {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.people = append(s.people, p)
	i := len(s.people) - 1
	s.log.Debug("person added", "id", p.ID, "index", i)
	s.notify(Change{Kind: Added, Index: i, Person: p})
	return i
}

// RemoveAt removes and returns the person at i.
func (s *Store) RemoveAt(i int) (*model.Person, error) {
	p, err := s.At(i)
	if err != nil {
		return nil, err
	}
	s.people = append(s.people[:i], s.people[i+1:]...)
	s.log.Debug("person removed", "id", p.ID, "index", i)
	s.notify(Change{Kind: Removed, Index: i, Person: p})
	return p, nil
}

// Update mutates the person at i in place and notifies subscribers.
func (s *Store) Update(i int, fn func(p *model.Person)) error {
	p, err := s.At(i)
	if err != nil {
		return err
	}
	fn(p)
	s.log.Debug("person updated", "id", p.ID, "index", i)
	s.notify(Change{Kind: Updated, Index: i, Person: p})
	return nil
}

// Touch announces that the person at i was already mutated in place.
func (s *Store) Touch(i int) error {
	return s.Update(i, func(*model.Person) {})
}

// Subscribe registers fn to run after every mutation, in subscription order.
// The returned func removes the subscription; calling it twice is harmless.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	// Snapshot so subscribers may unsubscribe (or subscribe) from inside a callback.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(c)
	}
}
