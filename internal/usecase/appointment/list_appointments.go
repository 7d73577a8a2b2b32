package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/mapper"
)

type ListAppointments struct {
	repo      domain.AppointmentRepository
	responses *mapper.ResponseMapper
	cache     cache.ListCache
}

func NewListAppointments(
	repo domain.AppointmentRepository,
	responses *mapper.ResponseMapper,
	listCache cache.ListCache,
) *ListAppointments {
	return &ListAppointments{
		repo:      repo,
		responses: responses,
		cache:     cacheOrNop(listCache),
	}
}

// Execute returns every appointment ordered by date then id, with person
// and location resolved. It never fails; a store error yields an empty
// list.
func (uc *ListAppointments) Execute(ctx context.Context) []dto.AppointmentResponseDTO {
	var out []dto.AppointmentResponseDTO
	if readCached(ctx, uc.cache, cache.KeyAppointments, &out) {
		return out
	}

	aps, err := uc.repo.FindAll(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to list appointments")
		return []dto.AppointmentResponseDTO{}
	}

	domain.SortAppointments(aps)
	out = uc.responses.Appointments(ctx, aps)

	writeCached(ctx, uc.cache, cache.KeyAppointments, out)
	return out
}
