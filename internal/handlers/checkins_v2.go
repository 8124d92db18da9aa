package handlers

import (
	"net/http"

	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CheckinV2Handler serves the cached v2 check-in surface. Both endpoints
// accept use_cache=false to skip the result cache for one request.
type CheckinV2Handler struct {
	checkinService service.CheckinService
}

// NewCheckinV2Handler expects a service built with service.NewCachedCheckinService
func NewCheckinV2Handler(checkinService service.CheckinService) *CheckinV2Handler {
	return &CheckinV2Handler{
		checkinService: checkinService,
	}
}

// ListMyCheckins handles GET /api/v2/checkins/me
func (h *CheckinV2Handler) ListMyCheckins(c *gin.Context) {
	if !applyCacheParam(c) {
		return
	}
	listCheckins(c, h.checkinService, pathMyCheckinsV2)
}

// GetAdvancedAnalytics handles GET /api/v2/checkins/me/advanced-analytics
func (h *CheckinV2Handler) GetAdvancedAnalytics(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if !applyCacheParam(c) {
		return
	}
	filter, errs := parseFilter(c)
	if len(errs) > 0 {
		writeValidation(c, errs)
		return
	}

	analytics, err := h.checkinService.GetAdvancedAnalytics(c.Request.Context(), userID, filter)
	if err != nil {
		writeServiceError(c, err, "analytics", userID)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// applyCacheParam honors use_cache=false by marking the request context
func applyCacheParam(c *gin.Context) bool {
	useCache, errs := parseOptionalBool(c, "use_cache")
	if len(errs) > 0 {
		writeValidation(c, errs)
		return false
	}
	if useCache != nil && !*useCache {
		c.Request = c.Request.WithContext(service.WithoutCache(c.Request.Context()))
	}
	return true
}
