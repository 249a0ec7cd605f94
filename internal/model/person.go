package model

import (
	"strconv"
	"strings"
	"time"

	"contacts/internal/dateutil"
)

// Person is one contact.
//
// Text fields default to "" and Birthday defaults to nil (no date), so the zero
// value is the blank record used when creating a new person.
type Person struct {
	// ID is an opaque handle assigned when the person enters the store.
	// It is not a uniqueness constraint on the contact's data; duplicate names are fine.
	ID string `json:"id,omitempty"`

	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Street     string     `json:"street"`
	PostalCode int        `json:"postalCode"`
	City       string     `json:"city"`
	Birthday   *time.Time `json:"birthday,omitempty"`
}

// NewPerson returns a blank person.
func NewPerson() *Person {
	return &Person{}
}

// Clone returns a deep copy of p.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Birthday != nil {
		b := *p.Birthday
		cp.Birthday = &b
	}
	return &cp
}

// DisplayName is "First Last", trimmed.
func (p *Person) DisplayName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Detail is the formatted projection of a person shown in the detail pane.
// The zero value (all "") is the "nothing selected" state.
type Detail struct {
	FirstName  string
	LastName   string
	Street     string
	PostalCode string
	City       string
	Birthday   string
}

// DetailOf projects p into display strings. A nil person yields the empty Detail.
func DetailOf(p *Person) Detail {
	if p == nil {
		return Detail{}
	}
	return Detail{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Street:     p.Street,
		PostalCode: strconv.Itoa(p.PostalCode),
		City:       p.City,
		Birthday:   dateutil.Format(p.Birthday),
	}
}

// IsEmpty reports whether every field of the projection is empty.
func (d Detail) IsEmpty() bool {
	return d == Detail{}
}
