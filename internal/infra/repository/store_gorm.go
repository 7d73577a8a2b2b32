package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

// GormStore implements domain.Store for any gorm model keyed by a uint
// primary key.
type GormStore[T any] struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *GormStore[models.Appointment] {
	return &GormStore[models.Appointment]{db: db}
}

func NewPersonGormRepository(db *gorm.DB) *GormStore[models.Person] {
	return &GormStore[models.Person]{db: db}
}

func NewLocationGormRepository(db *gorm.DB) *GormStore[models.Location] {
	return &GormStore[models.Location]{db: db}
}

// Save inserts a record with a zero id and updates it otherwise. The
// assigned id is written back into record.
func (r *GormStore[T]) Save(
	ctx context.Context,
	record *T,
) (*T, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *GormStore[T]) FindAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormStore[T]) FindByID(
	ctx context.Context,
	id uint,
) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *GormStore[T]) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var (
	_ domain.AppointmentRepository = (*GormStore[models.Appointment])(nil)
	_ domain.PersonRepository      = (*GormStore[models.Person])(nil)
	_ domain.LocationRepository    = (*GormStore[models.Location])(nil)
)
