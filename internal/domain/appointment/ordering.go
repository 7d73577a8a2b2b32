package appointment

import (
	"cmp"
	"slices"
	"strings"

	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

// ===============================
// Comparators
// ===============================

// CompareAppointments orders by date, then id. Distinct rows never
// compare equal because ids are unique.
func CompareAppointments(a, b models.Appointment) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// ComparePeople orders by plain name value, then id.
func ComparePeople(a, b models.Person) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// CompareLocations orders by plain name value, then id.
func CompareLocations(a, b models.Location) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// ===============================
// Sorting
// ===============================

func SortAppointments(aps []models.Appointment) {
	slices.SortFunc(aps, CompareAppointments)
}

func SortPeople(people []models.Person) {
	slices.SortFunc(people, ComparePeople)
}

func SortLocations(locations []models.Location) {
	slices.SortFunc(locations, CompareLocations)
}
