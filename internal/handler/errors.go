package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

// RespondError converts any error into the envelope. Structured AppErrors
// keep their status and message; everything else degrades to a 500 carrying
// the error text.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
