package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-planner/internal/httperr"
	"github.com/BruksfildServices01/appointment-planner/internal/httpresp"
	"github.com/BruksfildServices01/appointment-planner/internal/middleware"
	"github.com/BruksfildServices01/appointment-planner/internal/models"
	"github.com/BruksfildServices01/appointment-planner/internal/validators"
)

// auditLogsMax caps the response to the most recent entries.
const auditLogsMax = 200

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the latest audit entries, optionally filtered by action,
// entity and a from/to day range (yyyy-MM-dd, both inclusive).
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(validators.DateLayout, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Invalid from date.")
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(validators.DateLayout, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Invalid to date.")
			return
		}
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	// --------------------------------------------------
	// Listing
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(auditLogsMax).
		Find(&logs).Error; err != nil {

		middleware.Log(c).WithError(err).Error("failed to list audit logs")
		httperr.UnknownFailure(c)
		return
	}

	httpresp.List(c, logs)
}
