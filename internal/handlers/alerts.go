package handlers

import (
	"net/http"

	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertService service.AlertService
}

// NewAlertHandler creates a new burnout alert handler
func NewAlertHandler(alertService service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// ListMyAlerts handles GET /api/v1/alerts/me?read=true|false
func (h *AlertHandler) ListMyAlerts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	read, errs := parseOptionalBool(c, "read")
	if len(errs) > 0 {
		writeValidation(c, errs)
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), userID, read)
	if err != nil {
		writeServiceError(c, err, "alerts", userID)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// MarkRead handles PATCH /api/v1/alerts/:id/read
func (h *AlertHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := validPathID(c, "id")
	if !ok {
		return
	}

	alert, err := h.alertService.MarkAlertRead(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err, "alert", id)
		return
	}

	c.JSON(http.StatusOK, alert)
}
