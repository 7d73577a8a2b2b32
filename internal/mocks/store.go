// Package mocks holds testify mocks of the persistence contracts, shared
// by the package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

type Store[T any] struct {
	mock.Mock
}

// Save accepts either a *T or a func(context.Context, *T) *T as the first
// return value, the latter to echo the saved record back.
func (m *Store[T]) Save(ctx context.Context, record *T) (*T, error) {
	args := m.Called(ctx, record)
	switch v := args.Get(0).(type) {
	case func(context.Context, *T) *T:
		return v(ctx, record), args.Error(1)
	case *T:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]T)
	return out, args.Error(1)
}

func (m *Store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *Store[T]) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type (
	AppointmentStore = Store[models.Appointment]
	PersonStore      = Store[models.Person]
	LocationStore    = Store[models.Location]
)

var (
	_ domain.AppointmentRepository = (*AppointmentStore)(nil)
	_ domain.PersonRepository      = (*PersonStore)(nil)
	_ domain.LocationRepository    = (*LocationStore)(nil)
)
