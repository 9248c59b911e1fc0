package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelechi/studentbase/internal/app/models/dto"
	"github.com/kelechi/studentbase/internal/pkg/apperrors"
)

// statusMapping pairs an error kind with the HTTP status it maps to.
// Distinct failure causes get distinct, documented status codes instead
// of being collapsed into one generic response.
var statusMapping = []struct {
	err    error
	status int
}{
	{apperrors.ErrInvalidEmail, http.StatusBadRequest},
	{apperrors.ErrInvalidPassword, http.StatusBadRequest},
	{apperrors.ErrCoursesNotAList, http.StatusBadRequest},
	{apperrors.ErrValidationFailed, http.StatusBadRequest},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},

	{apperrors.ErrStudentNotFound, http.StatusNotFound},
	{apperrors.ErrCourseNotFound, http.StatusNotFound},
	{apperrors.ErrUserNotFound, http.StatusNotFound},

	{apperrors.ErrUserAlreadyExists, http.StatusConflict},
	{apperrors.ErrStudentAlreadyExists, http.StatusConflict},
	{apperrors.ErrEmailInUse, http.StatusConflict},
	{apperrors.ErrCourseAlreadyAdded, http.StatusConflict},
}

// HandleAPIError maps service errors onto HTTP responses with the
// standard failure envelope.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range statusMapping {
		if errors.Is(err, m.err) {
			c.JSON(m.status, dto.NewFailedResponse(m.err.Error()))
			return
		}
	}

	c.JSON(http.StatusInternalServerError, dto.NewFailedResponse("something went wrong, please check inputs"))
}
