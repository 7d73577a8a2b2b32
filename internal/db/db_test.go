package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	for _, m := range []any{&models.Person{}, &models.Location{}, &models.Appointment{}, &models.AuditLog{}} {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasTable("people"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestPoolForSQLiteNeverRecyclesTheConnection(t *testing.T) {
	pool := poolFor("sqlite")

	assert.Equal(t, 1, pool.maxOpen)
	assert.Equal(t, 1, pool.maxIdle)
	assert.Zero(t, pool.maxLifetime)
	assert.Zero(t, pool.maxIdleTime)
}

func TestPoolForPostgresRecyclesConnections(t *testing.T) {
	pool := poolFor("postgres")

	assert.Equal(t, 10, pool.maxOpen)
	assert.Equal(t, 30*time.Minute, pool.maxLifetime)
	assert.Equal(t, 10*time.Minute, pool.maxIdleTime)
}

func TestOpenSQLiteMemoryKeepsSchemaOnSingleConnection(t *testing.T) {
	gdb, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, gdb.Create(&models.Person{Name: "Ada", Affiliation: "Engines"}).Error)
	var count int64
	require.NoError(t, gdb.Model(&models.Person{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
