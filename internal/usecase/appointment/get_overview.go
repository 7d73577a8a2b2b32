package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/dto"
)

// GetOverview assembles the appointments page from the three ordered
// lists.
type GetOverview struct {
	appointments *ListAppointments
	people       *ListPeople
	locations    *ListLocations
}

func NewGetOverview(
	appointments *ListAppointments,
	people *ListPeople,
	locations *ListLocations,
) *GetOverview {
	return &GetOverview{
		appointments: appointments,
		people:       people,
		locations:    locations,
	}
}

func (uc *GetOverview) Execute(ctx context.Context) dto.OverviewDTO {
	return dto.OverviewDTO{
		Appointments: uc.appointments.Execute(ctx),
		People:       uc.people.Execute(ctx),
		Locations:    uc.locations.Execute(ctx),
	}
}
