package handlers

import (
	"strconv"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/middleware"
	"github.com/JonnyWalker81/workwell/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated user, writing a 401 when absent
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
	}
	return userID, ok
}

// parseFilter reads start_date and end_date (YYYY-MM-DD) into a filter
func parseFilter(c *gin.Context) (models.CheckinFilter, []apierror.FieldError) {
	var (
		filter models.CheckinFilter
		errs   []apierror.FieldError
	)

	parse := func(field string) *models.Date {
		raw := c.Query(field)
		if raw == "" {
			return nil
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			errs = append(errs, apierror.FieldError{
				Field:   field,
				Message: "must be a date in YYYY-MM-DD format",
				Code:    "invalid_format",
			})
			return nil
		}
		return &d
	}

	filter.Start = parse("start_date")
	filter.End = parse("end_date")

	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		errs = append(errs, apierror.FieldError{
			Field:   "start_date",
			Message: "must be on or before end_date",
			Code:    "invalid_range",
		})
	}

	return filter, errs
}

// parsePagination reads page_number and page_size. Absent values are passed
// through as zero for the service to default.
func parsePagination(c *gin.Context) (int, int, []apierror.FieldError) {
	var errs []apierror.FieldError

	parse := func(field string) int {
		raw := c.Query(field)
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, apierror.FieldError{
				Field:   field,
				Message: "must be a positive integer",
				Code:    "invalid_type",
			})
			return 0
		}
		return n
	}

	page := parse("page_number")
	size := parse("page_size")
	return page, size, errs
}

// parseOptionalBool reads a true/false query parameter; nil means absent
func parseOptionalBool(c *gin.Context, field string) (*bool, []apierror.FieldError) {
	raw := c.Query(field)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, []apierror.FieldError{{
			Field:   field,
			Message: "must be a boolean value",
			Code:    "invalid_type",
		}}
	}
	return &b, nil
}

func writeValidation(c *gin.Context, errs []apierror.FieldError) {
	apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), errs))
}
