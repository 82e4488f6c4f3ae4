package handlers

import (
	"net/http"

	"detailops/services/booking"
	"detailops/utils"

	"github.com/gin-gonic/gin"
)

// respondError translates the engine's error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch booking.CodeOf(err) {
	case booking.CodeUnauthorized:
		status = http.StatusUnauthorized
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeInvalidInput:
		status = http.StatusBadRequest
	case booking.CodePreconditionFailed:
		status = http.StatusUnprocessableEntity
	case booking.CodeConflict:
		status = http.StatusConflict
	}
	utils.JSONError(c, status, http.StatusText(status), err.Error())
}
