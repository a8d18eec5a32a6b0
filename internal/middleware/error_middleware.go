package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/logger"
)

// messageOf prefers the CustomError message over the fallback
func messageOf(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" && !errors.Is(err, apperrors.ErrPersistence) {
		return custom.Message
	}
	return fallback
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var detail *dto.ErrorDetail

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, messageOf(err, "Bad request"))
	case errors.Is(err, apperrors.ErrNotAuthenticated), errors.Is(err, apperrors.ErrSessionNotFound):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrSessionExpired):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeSessionExpired, "Session expired")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrAccountNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeAccountNotFound, "Account not found")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email")
	case errors.Is(err, apperrors.ErrProfileNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeProfileNotFound, "Profile not found")
	case errors.Is(err, apperrors.ErrIncompleteProfile):
		status = http.StatusUnprocessableEntity
		detail = dto.NewErrorDetail(dto.ErrorCodeIncompleteProfile, "Profile is incomplete")
	case errors.Is(err, apperrors.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
		detail = dto.NewErrorDetail(dto.ErrorCodeFileTooLarge, "File is too large").WithField("resume")
	case errors.Is(err, apperrors.ErrInvalidFileType):
		status = http.StatusUnsupportedMediaType
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidFileType, "Only PDF files are allowed").WithField("resume")
	case errors.Is(err, apperrors.ErrInternshipNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Internship not found")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeAlreadyRegistered, "You have already registered for this internship")
	case errors.Is(err, apperrors.ErrInvalidTarget):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidTarget, messageOf(err, "Invalid internship"))
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		status = http.StatusServiceUnavailable
		detail = dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, messageOf(err, "Service unavailable"))
	case errors.Is(err, apperrors.ErrServiceError):
		status = http.StatusBadGateway
		detail = dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "External service error")
	case errors.Is(err, apperrors.ErrPersistence):
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "A database error occurred").
			WithSeverity(dto.ErrorSeverityCritical)
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Persistence failure")
	default:
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}
