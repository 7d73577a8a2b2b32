package mapper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/mocks"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

func TestResponseMapper_ResolvesReferences(t *testing.T) {
	people := &mocks.PersonStore{}
	locations := &mocks.LocationStore{}
	people.On("FindByID", mock.Anything, uint(1)).Return(&models.Person{ID: 1, Name: "Ada", Affiliation: "Lab"}, nil)
	locations.On("FindByID", mock.Anything, uint(2)).Return(&models.Location{ID: 2, Name: "HQ", Description: "Main"}, nil)

	date := time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)
	out := NewResponseMapper(people, locations).Appointment(context.Background(), models.Appointment{
		ID: 7, Description: "Sync", Date: date, PersonID: uintPtr(1), LocationID: uintPtr(2),
	})

	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, "Sync", out.Description)
	assert.Equal(t, date, out.Date)
	require.NotNil(t, out.Person)
	assert.Equal(t, "Ada", out.Person.Name)
	require.NotNil(t, out.Location)
	assert.Equal(t, "HQ", out.Location.Name)
}

func TestResponseMapper_DanglingReferencesAreOmitted(t *testing.T) {
	people := &mocks.PersonStore{}
	locations := &mocks.LocationStore{}
	people.On("FindByID", mock.Anything, uint(1)).Return(nil, domain.ErrNotFound)
	locations.On("FindByID", mock.Anything, uint(2)).Return(nil, domain.ErrNotFound)

	out := NewResponseMapper(people, locations).Appointment(context.Background(), models.Appointment{
		ID: 1, Description: "Orphan", PersonID: uintPtr(1), LocationID: uintPtr(2),
	})

	assert.Equal(t, "Orphan", out.Description)
	assert.Nil(t, out.Person)
	assert.Nil(t, out.Location)
}

func TestResponseMapper_NilReferencesSkipLookups(t *testing.T) {
	people := &mocks.PersonStore{}
	locations := &mocks.LocationStore{}

	out := NewResponseMapper(people, locations).Appointments(context.Background(), []models.Appointment{
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
	})

	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(2), out[1].ID)
	people.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	locations.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
