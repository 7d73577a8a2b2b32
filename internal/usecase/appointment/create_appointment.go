package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/audit"
	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/mapper"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.AppointmentRepository
	validator *validators.Validator
	mapper    *mapper.Mapper
	responses *mapper.ResponseMapper
	cache     cache.ListCache
	audit     *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.AppointmentRepository,
	validator *validators.Validator,
	m *mapper.Mapper,
	responses *mapper.ResponseMapper,
	listCache cache.ListCache,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		validator: validator,
		mapper:    m,
		responses: responses,
		cache:     cacheOrNop(listCache),
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute returns a *validators.ValidationError unchanged when the input
// is rejected. Any other failure is logged and reported as
// domain.ErrUnknownFailure with a nil result.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in *dto.AppointmentRequestDTO,
) (*dto.AppointmentResponseDTO, error) {

	// --------------------------------------------------
	// 1️⃣ Validation (fail fast)
	// --------------------------------------------------
	if err := uc.validator.ValidateAppointment(ctx, in); err != nil {
		if validators.IsValidation(err) {
			return nil, err
		}
		logger.WithError(err).Error("an unexpected error occurred validating an appointment")
		return nil, domain.ErrUnknownFailure
	}

	// --------------------------------------------------
	// 2️⃣ Mapping + persistence
	// --------------------------------------------------
	ap := uc.mapper.AppointmentToDomain(*in)

	saved, err := uc.repo.Save(ctx, &ap)
	if err != nil || saved == nil {
		logger.WithError(err).Error("an unexpected error occurred creating an appointment")
		return nil, domain.ErrUnknownFailure
	}

	invalidate(ctx, uc.cache, cache.KeyAppointments)

	// --------------------------------------------------
	// 3️⃣ Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &saved.ID,
		Metadata: map[string]any{
			"description": saved.Description,
			"date":        saved.Date,
			"person_id":   saved.PersonID,
			"location_id": saved.LocationID,
		},
	})

	out := uc.responses.Appointment(ctx, *saved)
	return &out, nil
}
