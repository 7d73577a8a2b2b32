package mapper

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

// ResponseMapper builds appointment responses, resolving the person and
// location references. A reference that no longer resolves is logged and
// left out of the response.
type ResponseMapper struct {
	people    domain.Finder[models.Person]
	locations domain.Finder[models.Location]
}

func NewResponseMapper(
	people domain.Finder[models.Person],
	locations domain.Finder[models.Location],
) *ResponseMapper {
	return &ResponseMapper{
		people:    people,
		locations: locations,
	}
}

func (m *ResponseMapper) Appointment(ctx context.Context, ap models.Appointment) dto.AppointmentResponseDTO {
	out := dto.AppointmentResponseDTO{
		ID:          ap.ID,
		Description: ap.Description,
		Date:        ap.Date,
	}

	if ap.PersonID != nil {
		person, err := m.people.FindByID(ctx, *ap.PersonID)
		if err != nil {
			logger.WithError(err).
				WithField("appointment_id", ap.ID).
				Errorf("cannot find person with id %d", *ap.PersonID)
		} else {
			p := PersonToDTO(*person)
			out.Person = &p
		}
	}

	if ap.LocationID != nil {
		location, err := m.locations.FindByID(ctx, *ap.LocationID)
		if err != nil {
			logger.WithError(err).
				WithField("appointment_id", ap.ID).
				Errorf("cannot find location with id %d", *ap.LocationID)
		} else {
			l := LocationToDTO(*location)
			out.Location = &l
		}
	}

	return out
}

func (m *ResponseMapper) Appointments(ctx context.Context, aps []models.Appointment) []dto.AppointmentResponseDTO {
	out := make([]dto.AppointmentResponseDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, m.Appointment(ctx, ap))
	}
	return out
}
