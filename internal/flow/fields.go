package flow

import (
	"strings"
)

// Field identifies one editable attribute of a person.
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldStreet
	FieldPostalCode
	FieldCity
	FieldBirthday

	fieldCount
)

// Fields lists every field in form order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldStreet,
	FieldPostalCode,
	FieldCity,
	FieldBirthday,
}

func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First name"
	case FieldLastName:
		return "Last name"
	case FieldStreet:
		return "Street"
	case FieldPostalCode:
		return "Postal code"
	case FieldCity:
		return "City"
	case FieldBirthday:
		return "Birthday"
	default:
		return "?"
	}
}

// FieldErrors maps a field to its validation message. Empty means valid.
type FieldErrors map[Field]string

func (e FieldErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Summary renders the messages one per line, in form order.
func (e FieldErrors) Summary() string {
	var lines []string
	for _, f := range Fields {
		if msg, ok := e[f]; ok {
			lines = append(lines, msg)
		}
	}
	return strings.Join(lines, "\n")
}
