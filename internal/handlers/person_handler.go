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

type PersonHandler struct {
	createUC *ucAppointment.CreatePerson
	listUC   *ucAppointment.ListPeople
}

func NewPersonHandler(
	createUC *ucAppointment.CreatePerson,
	listUC *ucAppointment.ListPeople,
) *PersonHandler {
	return &PersonHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

func (h *PersonHandler) Create(c *gin.Context) {
	var req dto.PersonDTO
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid person form.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), &req)
	if err != nil {
		if validators.IsValidation(err) {
			middleware.Log(c).WithError(err).Warn("the given person failed validation")
			httperr.Validation(c, err.Error())
			return
		}
		httperr.UnknownFailure(c)
		return
	}

	httpresp.Created(c, created)
}

func (h *PersonHandler) List(c *gin.Context) {
	httpresp.List(c, h.listUC.Execute(c.Request.Context()))
}
