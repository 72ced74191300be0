package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outlet-platform/stock-service/internal/apperrors"
	"github.com/outlet-platform/stock-service/internal/logging"
)

// respondError maps a service error onto the HTTP response. AppErrors
// carry their own status and code; anything else is a 500 with the
// detail kept in the log, not the body.
func respondError(c *gin.Context, logger *logging.Logger, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.WithError(err).Error("Request failed",
				"method", c.Request.Method, "path", c.FullPath())
		}
		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	logger.WithError(err).Error("Request failed",
		"method", c.Request.Method, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    apperrors.CodeInternalError,
		"message": "an internal error occurred",
	})
}
