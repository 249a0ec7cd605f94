package flow

import (
	"testing"

	"contacts/internal/model"
	"contacts/internal/people"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formEditor opens an EditForm and leaves it for the test to drive.
type formEditor struct {
	form  *EditForm
	calls int
}

func (e *formEditor) Edit(p *model.Person, title string, done func(bool)) {
	e.calls++
	e.form = NewEditForm(title, p, done)
}

type recordingWarner struct {
	warnings []Warning
}

func (w *recordingWarner) Warn(x Warning) { w.warnings = append(w.warnings, x) }

type scriptedConfirmer struct {
	answer bool
	asked  []Confirmation
}

func (c *scriptedConfirmer) Confirm(x Confirmation, done func(bool)) {
	c.asked = append(c.asked, x)
	done(c.answer)
}

func newFixture(t *testing.T, opts ...OverviewOption) (*people.Store, *Overview, *formEditor, *recordingWarner) {
	t.Helper()
	st := people.New(nil)
	st.Seed(
		&model.Person{FirstName: "Hans", LastName: "Muster", Street: "Bahnhofstrasse 12", PostalCode: 8001, City: "Zuerich"},
		&model.Person{FirstName: "Ruth", LastName: "Mueller", Street: "Marktgasse 3", PostalCode: 3011, City: "Bern"},
	)
	ed := &formEditor{}
	wr := &recordingWarner{}
	ov := NewOverview(st, ed, wr, opts...)
	t.Cleanup(ov.Close)
	return st, ov, ed, wr
}

func TestOverview_StartsWithNothingSelected(t *testing.T) {
	_, ov, _, _ := newFixture(t)
	_, ok := ov.Selected()
	assert.False(t, ok)
	assert.True(t, ov.Detail().IsEmpty())
	assert.Nil(t, ov.SelectedPerson())
}

func TestOverview_SelectionChangedProjectsDetail(t *testing.T) {
	_, ov, _, _ := newFixture(t)

	ov.SelectionChanged(1)
	i, ok := ov.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, model.Detail{
		FirstName:  "Ruth",
		LastName:   "Mueller",
		Street:     "Marktgasse 3",
		PostalCode: "3011",
		City:       "Bern",
		Birthday:   "",
	}, ov.Detail())

	ov.SelectionChanged(-1)
	_, ok = ov.Selected()
	assert.False(t, ok)
	assert.True(t, ov.Detail().IsEmpty())

	ov.SelectionChanged(7)
	_, ok = ov.Selected()
	assert.False(t, ok)
}

func TestOverview_DeleteSelected(t *testing.T) {
	st, ov, _, wr := newFixture(t)

	ov.SelectionChanged(1)
	ov.DeleteRequested()

	require.Equal(t, 1, st.Len())
	p, _ := st.At(0)
	assert.Equal(t, "Hans", p.FirstName)
	assert.Equal(t, "Muster", p.LastName)

	_, ok := ov.Selected()
	assert.False(t, ok)
	assert.Equal(t, model.Detail{}, ov.Detail())
	assert.Empty(t, wr.warnings)
}

func TestOverview_DeleteWithoutSelectionWarns(t *testing.T) {
	st, ov, _, wr := newFixture(t)

	ov.DeleteRequested()

	assert.Equal(t, 2, st.Len())
	require.Len(t, wr.warnings, 1)
	assert.Equal(t, WarnNoEntrySelected, wr.warnings[0])
}

func TestOverview_DeleteWithConfirmer(t *testing.T) {
	c := &scriptedConfirmer{answer: false}
	st, ov, _, _ := newFixture(t, WithConfirmer(c))

	ov.SelectionChanged(0)
	ov.DeleteRequested()
	assert.Equal(t, 2, st.Len())
	require.Len(t, c.asked, 1)
	assert.Contains(t, c.asked[0].Prompt, "Hans Muster")
	_, ok := ov.Selected()
	assert.True(t, ok, "declining keeps the selection")

	c.answer = true
	ov.DeleteRequested()
	assert.Equal(t, 1, st.Len())
	p, _ := st.At(0)
	assert.Equal(t, "Ruth", p.FirstName)
	_, ok = ov.Selected()
	assert.False(t, ok)
}

func TestOverview_EditWithoutSelectionWarns(t *testing.T) {
	_, ov, ed, wr := newFixture(t)

	ov.EditRequested()

	assert.Equal(t, 0, ed.calls)
	require.Len(t, wr.warnings, 1)
	assert.Equal(t, WarnNoPersonSelected, wr.warnings[0])
}

func TestOverview_EditCommitRefreshesDetail(t *testing.T) {
	st, ov, ed, _ := newFixture(t)

	var changes []people.Change
	st.Subscribe(func(c people.Change) { changes = append(changes, c) })

	ov.SelectionChanged(0)
	ov.EditRequested()
	require.NotNil(t, ed.form)
	assert.Equal(t, TitleEditPerson, ed.form.Title())
	assert.Equal(t, "8001", ed.form.Value(FieldPostalCode))

	ed.form.Set(FieldCity, "Basel")
	ed.form.Set(FieldBirthday, "21.02.1969")
	ok, errs := ed.form.Submit()
	require.True(t, ok)
	assert.Nil(t, errs)

	p, _ := st.At(0)
	assert.Equal(t, "Basel", p.City)
	assert.Equal(t, "Basel", ov.Detail().City)
	assert.Equal(t, "21.02.1969", ov.Detail().Birthday)
	require.Len(t, changes, 1)
	assert.Equal(t, people.Updated, changes[0].Kind)
	assert.Equal(t, 0, changes[0].Index)
}

func TestOverview_EditInvalidPostalCodeKeepsRecord(t *testing.T) {
	for _, postal := range []string{"-5", "abc", "", "12 34", "+12", "99999999999999999999999"} {
		t.Run(postal, func(t *testing.T) {
			st, ov, ed, _ := newFixture(t)
			before := *mustAt(t, st, 1)

			ov.SelectionChanged(1)
			ov.EditRequested()
			ed.form.Set(FieldFirstName, "Changed")
			ed.form.Set(FieldPostalCode, postal)

			ok, errs := ed.form.Submit()
			assert.False(t, ok)
			assert.True(t, errs.Has(FieldPostalCode))
			assert.True(t, ed.form.Open(), "form stays open")
			assert.Equal(t, before, *mustAt(t, st, 1))
			assert.Equal(t, "Ruth", ov.Detail().FirstName)
		})
	}
}

func TestOverview_EditCancelLeavesRecord(t *testing.T) {
	st, ov, ed, _ := newFixture(t)
	before := *mustAt(t, st, 0)

	ov.SelectionChanged(0)
	ov.EditRequested()
	ed.form.Set(FieldLastName, "Other")
	ed.form.Cancel()

	assert.False(t, ed.form.Open())
	assert.Equal(t, before, *mustAt(t, st, 0))
}

func TestOverview_NewCancelLeavesStore(t *testing.T) {
	st, ov, ed, _ := newFixture(t)

	ov.NewRequested()
	require.NotNil(t, ed.form)
	assert.Equal(t, TitleNewPerson, ed.form.Title())
	ed.form.Set(FieldFirstName, "Anna")
	ed.form.Cancel()

	assert.Equal(t, 2, st.Len())
}

func TestOverview_NewSubmitAppends(t *testing.T) {
	st, ov, ed, _ := newFixture(t)

	ov.NewRequested()
	ed.form.Set(FieldFirstName, "Anna")
	ed.form.Set(FieldLastName, "Best")
	ed.form.Set(FieldStreet, "Via Nassa 20")
	ed.form.Set(FieldPostalCode, "6900")
	ed.form.Set(FieldCity, "Lugano")
	ed.form.Set(FieldBirthday, "08.09.1991")
	ok, _ := ed.form.Submit()
	require.True(t, ok)

	require.Equal(t, 3, st.Len())
	p := mustAt(t, st, 2)
	assert.Equal(t, "Anna", p.FirstName)
	assert.Equal(t, "Best", p.LastName)
	assert.Equal(t, "Via Nassa 20", p.Street)
	assert.Equal(t, 6900, p.PostalCode)
	assert.Equal(t, "Lugano", p.City)
	require.NotNil(t, p.Birthday)
	assert.Equal(t, "08.09.1991", model.DetailOf(p).Birthday)
	assert.NotEmpty(t, p.ID)
}

func TestOverview_NewInvalidThenValidAppendsOnce(t *testing.T) {
	st, ov, ed, _ := newFixture(t)

	ov.NewRequested()
	ed.form.Set(FieldFirstName, "Anna")
	ed.form.Set(FieldBirthday, "31.02.1991")
	ok, errs := ed.form.Submit()
	require.False(t, ok)
	assert.True(t, errs.Has(FieldBirthday))
	assert.Equal(t, 2, st.Len())

	ed.form.Set(FieldBirthday, "")
	ok, _ = ed.form.Submit()
	require.True(t, ok)
	assert.Equal(t, 3, st.Len())

	// A second submit on a closed form is a no-op.
	ok, _ = ed.form.Submit()
	assert.False(t, ok)
	assert.Equal(t, 3, st.Len())
}

func TestOverview_SelectionFollowsRemovalsElsewhere(t *testing.T) {
	st, ov, _, _ := newFixture(t)
	st.Add(&model.Person{FirstName: "Heinz", LastName: "Kurz"})

	ov.SelectionChanged(2)
	_, err := st.RemoveAt(0)
	require.NoError(t, err)

	i, ok := ov.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "Heinz", ov.SelectedPerson().FirstName)

	_, err = st.RemoveAt(1)
	require.NoError(t, err)
	_, ok = ov.Selected()
	assert.False(t, ok)
	assert.True(t, ov.Detail().IsEmpty())
}

func TestOverview_CloseDetaches(t *testing.T) {
	st, ov, _, _ := newFixture(t)
	ov.SelectionChanged(0)
	ov.Close()

	require.NoError(t, st.Update(0, func(p *model.Person) { p.City = "Chur" }))
	assert.Equal(t, "Zuerich", ov.Detail().City)
}

func mustAt(t *testing.T, st *people.Store, i int) *model.Person {
	t.Helper()
	p, err := st.At(i)
	require.NoError(t, err)
	return p
}
