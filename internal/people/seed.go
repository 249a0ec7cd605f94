package people

import (
	"time"

	"contacts/internal/model"
)

func birthday(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// SamplePeople returns the demo address book.
func SamplePeople() []*model.Person {
	return []*model.Person{
		{FirstName: "Hans", LastName: "Muster", Street: "Bahnhofstrasse 12", PostalCode: 8001, City: "Zuerich", Birthday: birthday(1969, time.February, 21)},
		{FirstName: "Ruth", LastName: "Mueller", Street: "Marktgasse 3", PostalCode: 3011, City: "Bern", Birthday: birthday(1974, time.June, 3)},
		{FirstName: "Heinz", LastName: "Kurz", Street: "Seestrasse 41", PostalCode: 6004, City: "Luzern", Birthday: birthday(1958, time.November, 30)},
		{FirstName: "Cornelia", LastName: "Meier", Street: "Rue du Rhone 7", PostalCode: 1204, City: "Geneve"},
		{FirstName: "Werner", LastName: "Meyer", Street: "Hauptstrasse 88", PostalCode: 4051, City: "Basel", Birthday: birthday(1982, time.January, 14)},
		{FirstName: "Lydia", LastName: "Kunz", Street: "Poststrasse 5", PostalCode: 9000, City: "St. Gallen"},
		{FirstName: "Anna", LastName: "Best", Street: "Via Nassa 20", PostalCode: 6900, City: "Lugano", Birthday: birthday(1991, time.September, 8)},
		{FirstName: "Stefan", LastName: "Meier", Street: "Kirchweg 2", PostalCode: 8400, City: "Winterthur"},
		{FirstName: "Martin", LastName: "Mueller", Street: "Dorfstrasse 17", PostalCode: 5000, City: "Aarau", Birthday: birthday(1966, time.April, 27)},
	}
}

// Seed appends ps in order.
func (s *Store) Seed(ps ...*model.Person) {
	for _, p := range ps {
		s.Add(p)
	}
}
