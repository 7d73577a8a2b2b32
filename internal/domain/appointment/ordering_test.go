package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ids[T any](items []T, id func(T) uint) []uint {
	out := make([]uint, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func appointmentID(a models.Appointment) uint { return a.ID }
func personID(p models.Person) uint           { return p.ID }
func locationID(l models.Location) uint       { return l.ID }

func TestSortAppointmentsChronologically(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, Date: day("2020-06-01")},
		{ID: 2, Date: day("2019-05-13")},
		{ID: 3, Date: day("2030-01-27")},
	}

	SortAppointments(aps)

	assert.Equal(t, []uint{2, 1, 3}, ids(aps, appointmentID))
}

func TestSortAppointmentsBreaksTiesByID(t *testing.T) {
	same := day("2021-03-04").Add(9 * time.Hour)
	aps := []models.Appointment{
		{ID: 9, Date: same},
		{ID: 4, Date: same},
		{ID: 7, Date: same},
		{ID: 1, Date: same.Add(time.Minute)},
	}

	SortAppointments(aps)

	assert.Equal(t, []uint{4, 7, 9, 1}, ids(aps, appointmentID))
}

func TestSortAppointmentsIsIdempotent(t *testing.T) {
	same := day("2022-01-01")
	aps := []models.Appointment{
		{ID: 5, Date: same},
		{ID: 3, Date: day("2021-01-01")},
		{ID: 2, Date: same},
		{ID: 8, Date: day("2023-01-01")},
	}

	SortAppointments(aps)
	first := append([]models.Appointment(nil), aps...)
	SortAppointments(aps)

	assert.Equal(t, first, aps)

	reversed := []models.Appointment{aps[3], aps[2], aps[1], aps[0]}
	SortAppointments(reversed)
	assert.Equal(t, first, reversed)
}

func TestCompareAppointmentsIsAntisymmetric(t *testing.T) {
	a := models.Appointment{ID: 1, Date: day("2020-01-01")}
	b := models.Appointment{ID: 2, Date: day("2020-01-01")}

	assert.Equal(t, -1, CompareAppointments(a, b))
	assert.Equal(t, 1, CompareAppointments(b, a))
	assert.Equal(t, 0, CompareAppointments(a, a))
}

func TestSortPeopleByNameThenID(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "DEF"},
		{ID: 2, Name: "ABC"},
		{ID: 3, Name: "GHI"},
		{ID: 0, Name: "DEF"},
	}

	SortPeople(people)

	assert.Equal(t, []uint{2, 0, 1, 3}, ids(people, personID))
}

func TestSortPeopleIsCaseSensitive(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "alice"},
		{ID: 2, Name: "Bob"},
	}

	SortPeople(people)

	// upper case sorts before lower case in plain value order
	assert.Equal(t, []uint{2, 1}, ids(people, personID))
}

func TestSortLocationsByNameThenID(t *testing.T) {
	locations := []models.Location{
		{ID: 6, Name: "Room B"},
		{ID: 5, Name: "Room A"},
		{ID: 4, Name: "Room B"},
	}

	SortLocations(locations)

	assert.Equal(t, []uint{5, 4, 6}, ids(locations, locationID))
}
