package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/audit"
	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.AppointmentRepository
	cache cache.ListCache
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.AppointmentRepository,
	listCache cache.ListCache,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cacheOrNop(listCache),
		audit: audit,
	}
}

// Execute returns whatever the store reports, domain.ErrNotFound included.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, uc.cache, cache.KeyAppointments)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
