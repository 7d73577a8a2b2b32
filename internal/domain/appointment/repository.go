package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

// Store is the persistence capability the use cases rely on. FindAll
// makes no ordering promise; FindByID and DeleteByID report ErrNotFound
// for an unknown id.
type Store[T any] interface {
	Save(ctx context.Context, record *T) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Finder is the lookup half of Store, used for reference checks.
type Finder[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
}

type (
	AppointmentRepository = Store[models.Appointment]
	PersonRepository      = Store[models.Person]
	LocationRepository    = Store[models.Location]
)
