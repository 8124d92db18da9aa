package handlers

import (
	"errors"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error to a problem response. Unknown
// errors are logged and reported as 500 without detail.
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	switch {
	case errors.Is(err, service.ErrCheckinNotFound), errors.Is(err, service.ErrAlertNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, service.ErrDuplicateCheckin):
		apierror.WriteProblem(c, apierror.NewDuplicateCheckinError(requestID, id))
	case errors.Is(err, service.ErrFutureCheckinDate):
		apierror.WriteProblem(c, apierror.NewFutureDateError(requestID, "checkin_date"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.Err(err),
			logger.String("resource", resource),
		)
		_ = c.Error(err)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// validPathID checks a UUIDv7 path parameter, writing a 400 when invalid
func validPathID(c *gin.Context, field string) (string, bool) {
	id := c.Param(field)
	if err := service.ValidateUUIDv7(id); err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(apierror.GetRequestID(c), field, id))
		return "", false
	}
	return id, true
}
