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

type CreateLocation struct {
	repo      domain.LocationRepository
	validator *validators.Validator
	mapper    *mapper.Mapper
	cache     cache.ListCache
	audit     *audit.Dispatcher
}

func NewCreateLocation(
	repo domain.LocationRepository,
	validator *validators.Validator,
	m *mapper.Mapper,
	listCache cache.ListCache,
	audit *audit.Dispatcher,
) *CreateLocation {
	return &CreateLocation{
		repo:      repo,
		validator: validator,
		mapper:    m,
		cache:     cacheOrNop(listCache),
		audit:     audit,
	}
}

func (uc *CreateLocation) Execute(
	ctx context.Context,
	in *dto.LocationDTO,
) (*dto.LocationDTO, error) {

	if err := uc.validator.ValidateLocation(in); err != nil {
		return nil, err
	}

	location := uc.mapper.LocationToDomain(*in)

	saved, err := uc.repo.Save(ctx, &location)
	if err != nil || saved == nil {
		logger.WithError(err).Error("an unexpected error occurred creating a location")
		return nil, domain.ErrUnknownFailure
	}

	invalidate(ctx, uc.cache, cache.KeyLocations)

	uc.audit.Dispatch(audit.Event{
		Action:   "location_created",
		Entity:   "location",
		EntityID: &saved.ID,
		Metadata: map[string]any{
			"name":        saved.Name,
			"description": saved.Description,
		},
	})

	out := mapper.LocationToDTO(*saved)
	return &out, nil
}
