package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

const readyTimeout = 2 * time.Second

type HealthHandler struct {
	env string
	db  Pinger
}

// NewHealthHandler creates a health handler. db may be nil when no SQL
// store is configured.
func NewHealthHandler(env string, db Pinger) *HealthHandler {
	return &HealthHandler{env: env, db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    h.env,
	})
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			logger.Ctx(c.Request.Context()).Warn("readiness check failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewServiceUnavailableError(apierror.GetRequestID(c), 5))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
