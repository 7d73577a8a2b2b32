package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-planner/internal/db"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
)

func TestLoggerPersistsMetadataAsJSON(t *testing.T) {
	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)

	id := uint(3)
	require.NoError(t, New(gdb).Log(Event{
		Action:   "person_created",
		Entity:   "person",
		EntityID: &id,
		Metadata: map[string]any{"name": "Ada", "affiliation": "Engines"},
	}))

	var row models.AuditLog
	require.NoError(t, gdb.First(&row).Error)
	assert.Equal(t, "person_created", row.Action)
	assert.Equal(t, id, *row.EntityID)
	assert.JSONEq(t, `{"name":"Ada","affiliation":"Engines"}`, row.Metadata)
}

func TestLoggerWithoutMetadata(t *testing.T) {
	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)

	require.NoError(t, New(gdb).Log(Event{Action: "appointment_deleted", Entity: "appointment"}))

	var row models.AuditLog
	require.NoError(t, gdb.First(&row).Error)
	assert.Empty(t, row.Metadata)
}
