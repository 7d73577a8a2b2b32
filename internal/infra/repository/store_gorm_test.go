package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-planner/internal/db"
	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	return gdb
}

func TestPersonStore_SaveAssignsID(t *testing.T) {
	ctx := context.Background()
	store := NewPersonGormRepository(openTestDB(t))

	saved, err := store.Save(ctx, &models.Person{Name: "Ada", Affiliation: "Lab"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
	assert.Equal(t, "Lab", found.Affiliation)
}

func TestStore_FindByIDNotFound(t *testing.T) {
	store := NewLocationGormRepository(openTestDB(t))

	_, err := store.FindByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentStore_FindAllAndDelete(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	people := NewPersonGormRepository(gdb)
	store := NewAppointmentGormRepository(gdb)

	p, err := people.Save(ctx, &models.Person{Name: "Grace", Affiliation: "Navy"})
	require.NoError(t, err)

	date := time.Date(2030, 1, 27, 9, 30, 0, 0, time.UTC)
	first, err := store.Save(ctx, &models.Appointment{Description: "Review", Date: date, PersonID: &p.ID})
	require.NoError(t, err)
	_, err = store.Save(ctx, &models.Appointment{Description: "Unassigned", Date: date})
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := store.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PersonID)
	assert.Equal(t, p.ID, *got.PersonID)
	assert.Nil(t, got.LocationID)
	assert.True(t, date.Equal(got.Date))

	require.NoError(t, store.DeleteByID(ctx, first.ID))
	assert.ErrorIs(t, store.DeleteByID(ctx, first.ID), domain.ErrNotFound)

	all, err = store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_FindAllEmpty(t *testing.T) {
	all, err := NewLocationGormRepository(openTestDB(t)).FindAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAppointmentStore_DanglingReferenceIsAllowed(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	people := NewPersonGormRepository(gdb)
	store := NewAppointmentGormRepository(gdb)

	p, err := people.Save(ctx, &models.Person{Name: "Temp", Affiliation: "Contractor"})
	require.NoError(t, err)
	ap, err := store.Save(ctx, &models.Appointment{Description: "Handover", Date: time.Now().UTC(), PersonID: &p.ID})
	require.NoError(t, err)

	require.NoError(t, people.DeleteByID(ctx, p.ID))

	got, err := store.FindByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, *got.PersonID)
}
