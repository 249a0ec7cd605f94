package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson_IsBlank(t *testing.T) {
	p := NewPerson()
	assert.Equal(t, "", p.FirstName)
	assert.Equal(t, "", p.LastName)
	assert.Equal(t, "", p.Street)
	assert.Equal(t, 0, p.PostalCode)
	assert.Equal(t, "", p.City)
	assert.Nil(t, p.Birthday)
}

func TestClone_CopiesBirthday(t *testing.T) {
	b := time.Date(1980, time.May, 2, 0, 0, 0, 0, time.UTC)
	p := &Person{ID: "x", FirstName: "Hans", LastName: "Muster", PostalCode: 1234, Birthday: &b}

	cp := p.Clone()
	require.NotNil(t, cp.Birthday)
	assert.Equal(t, *p, Person{ID: "x", FirstName: "Hans", LastName: "Muster", PostalCode: 1234, Birthday: &b})

	*cp.Birthday = cp.Birthday.AddDate(1, 0, 0)
	cp.FirstName = "Ruth"
	assert.Equal(t, 1980, p.Birthday.Year())
	assert.Equal(t, "Hans", p.FirstName)

	var nilP *Person
	assert.Nil(t, nilP.Clone())
}

func TestDetailOf(t *testing.T) {
	assert.True(t, DetailOf(nil).IsEmpty())

	b := time.Date(1999, time.January, 9, 0, 0, 0, 0, time.UTC)
	d := DetailOf(&Person{
		FirstName:  "Ruth",
		LastName:   "Mueller",
		Street:     "Bahnhofstrasse 1",
		PostalCode: 8001,
		City:       "Zuerich",
		Birthday:   &b,
	})
	assert.Equal(t, Detail{
		FirstName:  "Ruth",
		LastName:   "Mueller",
		Street:     "Bahnhofstrasse 1",
		PostalCode: "8001",
		City:       "Zuerich",
		Birthday:   "09.01.1999",
	}, d)
	assert.False(t, d.IsEmpty())

	// A blank person still shows its postal code.
	assert.Equal(t, "0", DetailOf(NewPerson()).PostalCode)
	assert.Equal(t, "", DetailOf(NewPerson()).Birthday)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Hans Muster", (&Person{FirstName: "Hans", LastName: "Muster"}).DisplayName())
	assert.Equal(t, "Hans", (&Person{FirstName: "Hans"}).DisplayName())
	assert.Equal(t, "", (*Person)(nil).DisplayName())
}
