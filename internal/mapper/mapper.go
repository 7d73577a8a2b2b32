package mapper

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/appointment-planner/internal/config"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

// Mapper turns validated request DTOs into records ready to be saved. It
// holds only configuration and is safe to share.
type Mapper struct {
	limits config.Limits
	loc    *time.Location
}

func New(limits config.Limits, loc *time.Location) *Mapper {
	if loc == nil {
		loc = time.UTC
	}
	return &Mapper{limits: limits, loc: loc}
}

// AppointmentToDomain truncates the description and combines date and
// time into one instant. When the combination does not parse, the
// appointment is returned with a zero Date instead of an error.
func (m *Mapper) AppointmentToDomain(in dto.AppointmentRequestDTO) models.Appointment {
	ap := models.Appointment{
		Description: Truncate(in.Description, m.limits.AppointmentDescription),
		PersonID:    copyID(in.PersonID),
		LocationID:  copyID(in.LocationID),
	}

	date, err := time.ParseInLocation(validators.DateTimeLayout, in.Date+" "+in.Time, m.loc)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"date": in.Date,
			"time": in.Time,
		}).Warn("failed to parse given date")
		return ap
	}

	ap.Date = date
	return ap
}

func (m *Mapper) PersonToDomain(in dto.PersonDTO) models.Person {
	return models.Person{
		Name:        Truncate(in.Name, m.limits.PersonName),
		Affiliation: Truncate(in.Affiliation, m.limits.PersonAffiliation),
	}
}

func (m *Mapper) LocationToDomain(in dto.LocationDTO) models.Location {
	return models.Location{
		Name:        Truncate(in.Name, m.limits.LocationName),
		Description: Truncate(in.Description, m.limits.LocationDescription),
	}
}

func PersonToDTO(p models.Person) dto.PersonDTO {
	return dto.PersonDTO{
		ID:          p.ID,
		Name:        p.Name,
		Affiliation: p.Affiliation,
	}
}

func LocationToDTO(l models.Location) dto.LocationDTO {
	return dto.LocationDTO{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
	}
}

// Truncate cuts s to at most max characters (runes, not bytes).
func Truncate(s string, max int) string {
	if max < 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
