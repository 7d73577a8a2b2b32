package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-planner/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/httperr"
	"github.com/BruksfildServices01/appointment-planner/internal/httpresp"
	"github.com/BruksfildServices01/appointment-planner/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-planner/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	dropBlankFormValues(c, "person_id", "location_id")

	var req dto.AppointmentRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment form.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), &req)
	if err != nil {
		if validators.IsValidation(err) {
			middleware.Log(c).WithError(err).Warn("the given appointment failed validation")
			httperr.Validation(c, err.Error())
			return
		}
		httperr.UnknownFailure(c)
		return
	}

	httpresp.Created(c, created)
}

// CreateDeprecated serves the old POST /appointments/create route.
// Deprecated: clients should POST to /appointments.
func (h *AppointmentHandler) CreateDeprecated(c *gin.Context) {
	middleware.Log(c).Warn("deprecated appointment create route used")
	h.Create(c)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments := h.listUC.Execute(c.Request.Context())
	middleware.Log(c).Infof("found %d appointments", len(appointments))
	httpresp.List(c, appointments)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			middleware.Log(c).WithField("appointment_id", id).Warn("appointment to delete not found")
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		middleware.Log(c).WithError(err).WithField("appointment_id", id).Error("failed to delete appointment")
		httperr.UnknownFailure(c)
		return
	}

	httpresp.NoContent(c)
}
