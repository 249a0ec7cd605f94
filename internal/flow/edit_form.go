package flow

import (
	"strconv"
	"strings"
	"time"

	"contacts/internal/dateutil"
	"contacts/internal/model"
)

// EditForm is the add/edit dialog state for one person.
//
// Values are copied out of the target when the form is loaded and only copied
// back by a successful Submit. Nothing touches the target while the user types.
type EditForm struct {
	title  string
	target *model.Person
	values [fieldCount]string
	errs   FieldErrors
	open   bool
	done   func(committed bool)
}

// NewEditForm opens a form for p. done (optional) runs exactly once, with true
// after a successful submit and false after cancel.
func NewEditForm(title string, p *model.Person, done func(committed bool)) *EditForm {
	f := &EditForm{title: title, done: done, open: true}
	f.Load(p)
	return f
}

// Load points the form at p and copies p's formatted values into the fields.
func (f *EditForm) Load(p *model.Person) {
	f.target = p
	f.errs = nil
	if p == nil {
		f.values = [fieldCount]string{}
		return
	}
	f.values[FieldFirstName] = p.FirstName
	f.values[FieldLastName] = p.LastName
	f.values[FieldStreet] = p.Street
	f.values[FieldPostalCode] = strconv.Itoa(p.PostalCode)
	f.values[FieldCity] = p.City
	f.values[FieldBirthday] = dateutil.Format(p.Birthday)
}

func (f *EditForm) Title() string         { return f.title }
func (f *EditForm) Target() *model.Person { return f.target }
func (f *EditForm) Open() bool            { return f.open }

// Errors returns the messages from the last rejected Submit.
func (f *EditForm) Errors() FieldErrors { return f.errs }

func (f *EditForm) Value(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return f.values[field]
}

func (f *EditForm) Set(field Field, v string) {
	if field < 0 || field >= fieldCount {
		return
	}
	f.values[field] = v
}

// Validate checks the current values without changing anything.
func (f *EditForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.values[FieldFirstName]) == "" {
		errs[FieldFirstName] = "No valid first name!"
	}
	if _, ok := parsePostalCode(f.values[FieldPostalCode]); !ok {
		errs[FieldPostalCode] = "No valid postal code (must be a non-negative integer)!"
	}
	if b := strings.TrimSpace(f.values[FieldBirthday]); b != "" && !dateutil.IsValidDate(b) {
		errs[FieldBirthday] = "No valid birthday. Use the format " + dateutil.Pattern + "!"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and, if everything passes, writes all fields into the target
// in one step and closes the form. On failure the form stays open and the target
// is untouched.
func (f *EditForm) Submit() (committed bool, errs FieldErrors) {
	if !f.open {
		return false, nil
	}
	if errs := f.Validate(); errs != nil {
		f.errs = errs
		return false, errs
	}
	f.errs = nil
	if f.target != nil {
		f.commit(f.target)
	}
	f.finish(true)
	return true, nil
}

// Cancel closes the form without touching the target.
func (f *EditForm) Cancel() {
	if !f.open {
		return
	}
	f.finish(false)
}

func (f *EditForm) commit(p *model.Person) {
	// Validate already guaranteed these parse.
	postal, _ := parsePostalCode(f.values[FieldPostalCode])
	var birthday *time.Time
	if d, ok := dateutil.Parse(strings.TrimSpace(f.values[FieldBirthday])); ok {
		birthday = &d
	}

	p.FirstName = strings.TrimSpace(f.values[FieldFirstName])
	p.LastName = strings.TrimSpace(f.values[FieldLastName])
	p.Street = strings.TrimSpace(f.values[FieldStreet])
	p.PostalCode = postal
	p.City = strings.TrimSpace(f.values[FieldCity])
	p.Birthday = birthday
}

func (f *EditForm) finish(committed bool) {
	f.open = false
	if f.done != nil {
		done := f.done
		f.done = nil
		done(committed)
	}
}

// parsePostalCode accepts base-10 digits only: no sign, no spaces inside.
func parsePostalCode(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// overflow
		return 0, false
	}
	return n, true
}
