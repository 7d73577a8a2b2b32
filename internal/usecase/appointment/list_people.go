package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/cache"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/logger"
	"github.com/BruksfildServices01/appointment-planner/internal/mapper"
)

type ListPeople struct {
	repo  domain.PersonRepository
	cache cache.ListCache
}

func NewListPeople(
	repo domain.PersonRepository,
	listCache cache.ListCache,
) *ListPeople {
	return &ListPeople{
		repo:  repo,
		cache: cacheOrNop(listCache),
	}
}

func (uc *ListPeople) Execute(ctx context.Context) []dto.PersonDTO {
	var out []dto.PersonDTO
	if readCached(ctx, uc.cache, cache.KeyPeople, &out) {
		return out
	}

	people, err := uc.repo.FindAll(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to list people")
		return []dto.PersonDTO{}
	}

	domain.SortPeople(people)

	out = make([]dto.PersonDTO, 0, len(people))
	for _, p := range people {
		out = append(out, mapper.PersonToDTO(p))
	}

	writeCached(ctx, uc.cache, cache.KeyPeople, out)
	return out
}
