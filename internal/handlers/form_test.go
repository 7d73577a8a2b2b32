package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-planner/internal/dto"
)

func bindAppointment(t *testing.T, req *http.Request) dto.AppointmentRequestDTO {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	dropBlankFormValues(c, "person_id", "location_id")

	var out dto.AppointmentRequestDTO
	require.NoError(t, c.ShouldBind(&out))
	return out
}

func TestDropBlankFormValues_URLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/appointments",
		strings.NewReader("description=Dentist&date=2020-01-01&time=10:00&person_id=&location_id=7"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := bindAppointment(t, req)

	assert.Equal(t, "Dentist", got.Description)
	assert.Nil(t, got.PersonID)
	require.NotNil(t, got.LocationID)
	assert.Equal(t, uint(7), *got.LocationID)
}

func TestDropBlankFormValues_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("description", "Dentist"))
	require.NoError(t, mw.WriteField("person_id", "3"))
	require.NoError(t, mw.WriteField("location_id", " "))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	got := bindAppointment(t, req)

	require.NotNil(t, got.PersonID)
	assert.Equal(t, uint(3), *got.PersonID)
	assert.Nil(t, got.LocationID)
}

func TestDropBlankFormValues_LeavesJSONAlone(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/appointments",
		strings.NewReader(`{"description":"Dentist","person_id":null,"location_id":2}`))
	req.Header.Set("Content-Type", "application/json")

	got := bindAppointment(t, req)

	assert.Nil(t, got.PersonID)
	require.NotNil(t, got.LocationID)
	assert.Equal(t, uint(2), *got.LocationID)
}
