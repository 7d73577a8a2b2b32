package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/mapper"
)

type ListLocations struct {
	repo  domain.LocationRepository
	cache cache.ListCache
}

func NewListLocations(
	repo domain.LocationRepository,
	listCache cache.ListCache,
) *ListLocations {
	return &ListLocations{
		repo:  repo,
		cache: cacheOrNop(listCache),
	}
}

func (uc *ListLocations) Execute(ctx context.Context) []dto.LocationDTO {
	var out []dto.LocationDTO
	if readCached(ctx, uc.cache, cache.KeyLocations, &out) {
		return out
	}

	locations, err := uc.repo.FindAll(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to list locations")
		return []dto.LocationDTO{}
	}

	domain.SortLocations(locations)

	out = make([]dto.LocationDTO, 0, len(locations))
	for _, l := range locations {
		out = append(out, mapper.LocationToDTO(l))
	}

	writeCached(ctx, uc.cache, cache.KeyLocations, out)
	return out
}
