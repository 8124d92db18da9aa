package handlers

import (
	"net/http"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BurnoutHandler struct {
	burnoutService service.BurnoutService
}

// NewBurnoutHandler creates a new burnout prediction handler
func NewBurnoutHandler(burnoutService service.BurnoutService) *BurnoutHandler {
	return &BurnoutHandler{
		burnoutService: burnoutService,
	}
}

// PredictMine handles GET /api/v1/burnout/predict/me
func (h *BurnoutHandler) PredictMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	prediction, err := h.burnoutService.PredictForUser(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err, "prediction", userID)
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// PredictForUser handles GET /api/v1/burnout/predict/:user_id (admin only)
func (h *BurnoutHandler) PredictForUser(c *gin.Context) {
	subjectID := c.Param("user_id")
	if subjectID == "" {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c),
			"user_id is required", "A user identifier is required"))
		return
	}

	prediction, err := h.burnoutService.PredictForSubject(c.Request.Context(), subjectID)
	if err != nil {
		writeServiceError(c, err, "prediction", subjectID)
		return
	}

	c.JSON(http.StatusOK, prediction)
}
