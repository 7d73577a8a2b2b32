package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-planner/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/appointment-planner/internal/usecase/appointment"
)

// OverviewHandler serves the data of the appointments page in one call.
type OverviewHandler struct {
	overviewUC *ucAppointment.GetOverview
}

func NewOverviewHandler(overviewUC *ucAppointment.GetOverview) *OverviewHandler {
	return &OverviewHandler{overviewUC: overviewUC}
}

func (h *OverviewHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.overviewUC.Execute(c.Request.Context()))
}
