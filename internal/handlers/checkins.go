package handlers

import (
	"net/http"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type CheckinHandler struct {
	checkinService service.CheckinService
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinService service.CheckinService) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

// CreateCheckin handles POST /api/v1/checkins
func (h *CheckinHandler) CreateCheckin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	checkin, err := h.checkinService.CreateCheckin(c.Request.Context(), userID, &req)
	if err != nil {
		date := models.Today().String()
		if req.CheckinDate != nil {
			date = req.CheckinDate.String()
		}
		writeServiceError(c, err, "checkin", date)
		return
	}

	c.Header("Location", absoluteURL(c, pathCheckins+"/"+checkin.ID, nil))
	c.JSON(http.StatusCreated, models.ResourceResponse[models.Checkin]{
		Data:    *checkin,
		Links:   checkinLinks(c, checkin.ID, true),
		Message: "Check-in created",
	})
}

// GetCheckin handles GET /api/v1/checkins/:id
func (h *CheckinHandler) GetCheckin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := validPathID(c, "id")
	if !ok {
		return
	}

	checkin, err := h.checkinService.GetCheckin(c.Request.Context(), userID, id)
	if err != nil {
		writeServiceError(c, err, "checkin", id)
		return
	}

	c.JSON(http.StatusOK, models.ResourceResponse[models.Checkin]{
		Data:  *checkin,
		Links: checkinLinks(c, checkin.ID, false),
	})
}

// ListMyCheckins handles GET /api/v1/checkins/me
func (h *CheckinHandler) ListMyCheckins(c *gin.Context) {
	listCheckins(c, h.checkinService, pathMyCheckins)
}

// GetMyStatistics handles GET /api/v1/checkins/me/statistics
func (h *CheckinHandler) GetMyStatistics(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filter, errs := parseFilter(c)
	if len(errs) > 0 {
		writeValidation(c, errs)
		return
	}

	stats, err := h.checkinService.GetStatistics(c.Request.Context(), userID, filter)
	if err != nil {
		writeServiceError(c, err, "statistics", userID)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// listCheckins serves a paged listing shared by both API versions
func listCheckins(c *gin.Context, svc service.CheckinService, path string) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	filter, errs := parseFilter(c)
	page, size, pageErrs := parsePagination(c)
	errs = append(errs, pageErrs...)
	if len(errs) > 0 {
		writeValidation(c, errs)
		return
	}

	result, err := svc.ListCheckins(c.Request.Context(), userID, filter, page, size)
	if err != nil {
		writeServiceError(c, err, "checkins", userID)
		return
	}

	logger.Ctx(c.Request.Context()).Debug("listed checkins",
		logger.Int("page_number", result.PageNumber),
		logger.Int("total_records", result.TotalRecords),
	)

	c.JSON(http.StatusOK, models.NewPagedResponse(*result, paginationLinks(c, path, *result, filter)))
}
