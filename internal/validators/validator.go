package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/appointment-planner/internal/config"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

const (
	FieldAppointmentDescription = "Appointment description"
	FieldPersonName             = "Person name"
	FieldPersonAffiliation      = "Person affiliation"
	FieldLocationName           = "Location name"
	FieldLocationDescription    = "Location description"
)

// Validator checks request DTOs field by field and stops at the first
// failure. Reference ids are looked up only when set.
type Validator struct {
	people    domain.Finder[models.Person]
	locations domain.Finder[models.Location]
	limits    config.Limits
}

func New(
	people domain.Finder[models.Person],
	locations domain.Finder[models.Location],
	limits config.Limits,
) *Validator {
	return &Validator{
		people:    people,
		locations: locations,
		limits:    limits,
	}
}

func (v *Validator) ValidateAppointment(ctx context.Context, in *dto.AppointmentRequestDTO) error {
	if in == nil {
		return newValidationError("", "Cannot save a blank appointment")
	}

	if err := ValidateText(in.Description, FieldAppointmentDescription); err != nil {
		return err
	}
	CheckFieldSize(in.Description, v.limits.AppointmentDescription, FieldAppointmentDescription)

	if err := ValidateDate(in.Date); err != nil {
		return err
	}
	if err := ValidateTime(in.Time); err != nil {
		return err
	}
	if err := v.validatePersonID(ctx, in.PersonID); err != nil {
		return err
	}
	return v.validateLocationID(ctx, in.LocationID)
}

func (v *Validator) ValidatePerson(in *dto.PersonDTO) error {
	if in == nil {
		return newValidationError("", "Cannot save a blank person")
	}

	if err := ValidateText(in.Name, FieldPersonName); err != nil {
		return err
	}
	CheckFieldSize(in.Name, v.limits.PersonName, FieldPersonName)

	if err := ValidateText(in.Affiliation, FieldPersonAffiliation); err != nil {
		return err
	}
	CheckFieldSize(in.Affiliation, v.limits.PersonAffiliation, FieldPersonAffiliation)

	return nil
}

func (v *Validator) ValidateLocation(in *dto.LocationDTO) error {
	if in == nil {
		return newValidationError("", "Cannot save a blank location")
	}

	if err := ValidateText(in.Name, FieldLocationName); err != nil {
		return err
	}
	CheckFieldSize(in.Name, v.limits.LocationName, FieldLocationName)

	if err := ValidateText(in.Description, FieldLocationDescription); err != nil {
		return err
	}
	CheckFieldSize(in.Description, v.limits.LocationDescription, FieldLocationDescription)

	return nil
}

func (v *Validator) validatePersonID(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := v.people.FindByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return newValidationError("person_id", "Invalid selected person")
		}
		return fmt.Errorf("lookup person %d: %w", *id, err)
	}
	return nil
}

func (v *Validator) validateLocationID(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := v.locations.FindByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return newValidationError("location_id", "Invalid selected location")
		}
		return fmt.Errorf("lookup location %d: %w", *id, err)
	}
	return nil
}
