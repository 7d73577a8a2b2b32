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

type CreatePerson struct {
	repo      domain.PersonRepository
	validator *validators.Validator
	mapper    *mapper.Mapper
	cache     cache.ListCache
	audit     *audit.Dispatcher
}

func NewCreatePerson(
	repo domain.PersonRepository,
	validator *validators.Validator,
	m *mapper.Mapper,
	listCache cache.ListCache,
	audit *audit.Dispatcher,
) *CreatePerson {
	return &CreatePerson{
		repo:      repo,
		validator: validator,
		mapper:    m,
		cache:     cacheOrNop(listCache),
		audit:     audit,
	}
}

func (uc *CreatePerson) Execute(
	ctx context.Context,
	in *dto.PersonDTO,
) (*dto.PersonDTO, error) {

	if err := uc.validator.ValidatePerson(in); err != nil {
		return nil, err
	}

	person := uc.mapper.PersonToDomain(*in)

	saved, err := uc.repo.Save(ctx, &person)
	if err != nil || saved == nil {
		logger.WithError(err).Error("an unexpected error occurred creating a person")
		return nil, domain.ErrUnknownFailure
	}

	invalidate(ctx, uc.cache, cache.KeyPeople)

	uc.audit.Dispatch(audit.Event{
		Action:   "person_created",
		Entity:   "person",
		EntityID: &saved.ID,
		Metadata: map[string]any{
			"name":        saved.Name,
			"affiliation": saved.Affiliation,
		},
	})

	out := mapper.PersonToDTO(*saved)
	return &out, nil
}
