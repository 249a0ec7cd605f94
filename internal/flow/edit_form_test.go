package flow

import (
	"testing"
	"time"

	"contacts/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditForm_LoadsFormattedValues(t *testing.T) {
	b := time.Date(1974, time.June, 3, 0, 0, 0, 0, time.UTC)
	f := NewEditForm("Edit", &model.Person{
		FirstName: "Ruth", LastName: "Mueller", Street: "Marktgasse 3",
		PostalCode: 3011, City: "Bern", Birthday: &b,
	}, nil)

	assert.True(t, f.Open())
	assert.Equal(t, "Ruth", f.Value(FieldFirstName))
	assert.Equal(t, "Mueller", f.Value(FieldLastName))
	assert.Equal(t, "Marktgasse 3", f.Value(FieldStreet))
	assert.Equal(t, "3011", f.Value(FieldPostalCode))
	assert.Equal(t, "Bern", f.Value(FieldCity))
	assert.Equal(t, "03.06.1974", f.Value(FieldBirthday))
}

func TestEditForm_BlankPersonLoadsEmptyBirthday(t *testing.T) {
	f := NewEditForm("New", model.NewPerson(), nil)
	assert.Equal(t, "", f.Value(FieldBirthday))
	assert.Equal(t, "0", f.Value(FieldPostalCode))
}

func TestEditForm_DoesNotMutateBeforeSubmit(t *testing.T) {
	p := &model.Person{FirstName: "Hans", PostalCode: 8001}
	f := NewEditForm("Edit", p, nil)
	f.Set(FieldFirstName, "Heinz")
	f.Set(FieldPostalCode, "1234")
	assert.Equal(t, "Hans", p.FirstName)
	assert.Equal(t, 8001, p.PostalCode)
}

func TestEditForm_ValidateCollectsAllErrors(t *testing.T) {
	f := NewEditForm("New", model.NewPerson(), nil)
	f.Set(FieldPostalCode, "abc")
	f.Set(FieldBirthday, "2020-01-01")

	errs := f.Validate()
	require.Len(t, errs, 3)
	assert.True(t, errs.Has(FieldFirstName))
	assert.True(t, errs.Has(FieldPostalCode))
	assert.True(t, errs.Has(FieldBirthday))
	assert.False(t, errs.Has(FieldCity))

	sum := errs.Summary()
	assert.Equal(t, errs[FieldFirstName]+"\n"+errs[FieldPostalCode]+"\n"+errs[FieldBirthday], sum)
}

func TestEditForm_SubmitRejectsWithoutCallingDone(t *testing.T) {
	calls := 0
	p := &model.Person{FirstName: "Hans", PostalCode: 8001}
	f := NewEditForm("Edit", p, func(bool) { calls++ })
	f.Set(FieldFirstName, "  ")

	ok, errs := f.Submit()
	assert.False(t, ok)
	assert.True(t, errs.Has(FieldFirstName))
	assert.Equal(t, errs, f.Errors())
	assert.Equal(t, 0, calls)
	assert.Equal(t, "Hans", p.FirstName)
}

func TestEditForm_SubmitCommitsTrimmedValues(t *testing.T) {
	var got []bool
	b := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	p := &model.Person{FirstName: "Hans", Birthday: &b}
	f := NewEditForm("Edit", p, func(c bool) { got = append(got, c) })
	f.Set(FieldFirstName, " Werner ")
	f.Set(FieldLastName, "Meyer")
	f.Set(FieldPostalCode, " 0042 ")
	f.Set(FieldBirthday, "")

	ok, errs := f.Submit()
	require.True(t, ok)
	assert.Nil(t, errs)
	assert.Nil(t, f.Errors())
	assert.False(t, f.Open())
	assert.Equal(t, []bool{true}, got)

	assert.Equal(t, "Werner", p.FirstName)
	assert.Equal(t, "Meyer", p.LastName)
	assert.Equal(t, 42, p.PostalCode)
	assert.Nil(t, p.Birthday, "clearing the field clears the birthday")
}

func TestEditForm_CancelIsFinal(t *testing.T) {
	var got []bool
	p := &model.Person{FirstName: "Hans"}
	f := NewEditForm("Edit", p, func(c bool) { got = append(got, c) })
	f.Set(FieldFirstName, "Heinz")
	f.Cancel()
	f.Cancel()
	ok, _ := f.Submit()

	assert.False(t, ok)
	assert.Equal(t, []bool{false}, got)
	assert.Equal(t, "Hans", p.FirstName)
}

func TestEditForm_UnknownFieldIgnored(t *testing.T) {
	f := NewEditForm("New", model.NewPerson(), nil)
	f.Set(Field(99), "x")
	assert.Equal(t, "", f.Value(Field(99)))
	assert.Equal(t, "?", Field(99).Label())
}
