package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-planner/internal/dto"
	"github.com/BruksfildServices01/appointment-planner/internal/httperr"
	"github.com/BruksfildServices01/appointment-planner/internal/httpresp"
	"github.com/BruksfildServices01/appointment-planner/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-planner/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

type LocationHandler struct {
	createUC *ucAppointment.CreateLocation
	listUC   *ucAppointment.ListLocations
}

func NewLocationHandler(
	createUC *ucAppointment.CreateLocation,
	listUC *ucAppointment.ListLocations,
) *LocationHandler {
	return &LocationHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.LocationDTO
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid location form.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), &req)
	if err != nil {
		if validators.IsValidation(err) {
			middleware.Log(c).WithError(err).Warn("the given location failed validation")
			httperr.Validation(c, err.Error())
			return
		}
		httperr.UnknownFailure(c)
		return
	}

	httpresp.Created(c, created)
}

func (h *LocationHandler) List(c *gin.Context) {
	httpresp.List(c, h.listUC.Execute(c.Request.Context()))
}
