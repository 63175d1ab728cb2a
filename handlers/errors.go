package handlers

import (
	"errors"
	"net/http"

	"petopia/services/appointment"
	"petopia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP responses. Validation, conflict,
// and OTP failures are client errors; anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *appointment.ValidationError
		notFoundErr   *appointment.NotFoundError
		conflictErr   *appointment.ConflictError
		otpErr        *appointment.OTPError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Error(), "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusBadRequest, conflictErr.Message, "")
	case errors.As(err, &otpErr):
		utils.JSONError(c, http.StatusBadRequest, otpErr.Message, "")
	default:
		getLogger(c).Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", err.Error())
	}
}
