package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// RecommendationController proxies the scoring service
type RecommendationController struct {
	recommendationService services.RecommendationService
	logger                zerolog.Logger
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendationService services.RecommendationService, logger zerolog.Logger) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// recommendationError maps proxy failures to the widget's error shape, false when err is not one of them
func recommendationError(err error) (int, *dto.RecommendationErrorResponse, bool) {
	var svcErr *apperrors.ServiceError
	switch {
	case errors.Is(err, apperrors.ErrProfileNotFound):
		return http.StatusUnprocessableEntity, &dto.RecommendationErrorResponse{
			Error:   "Profile not completed",
			Message: "Please complete your profile first with domain, CGPA, experience, and certifications",
		}, true
	case errors.Is(err, apperrors.ErrIncompleteProfile):
		return http.StatusUnprocessableEntity, &dto.RecommendationErrorResponse{
			Error:   "Incomplete profile data",
			Message: "Please update your profile with domain and CGPA information",
		}, true
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, &dto.RecommendationErrorResponse{
			Error:            "Cannot connect to AI recommendation service",
			Message:          "Please make sure the recommendation service is running",
			TechnicalDetails: apperrors.DetailOf(err, "technicalDetails"),
		}, true
	case errors.As(err, &svcErr):
		return http.StatusBadGateway, &dto.RecommendationErrorResponse{
			Error:    "AI service error",
			Message:  "Recommendation service returned an error",
			HTTPCode: svcErr.StatusCode,
			Response: svcErr.Body,
		}, true
	}
	return 0, nil, false
}

// GetRecommendations returns ranked internships for the caller's profile
// @Summary Get recommendations
// @Description Sends the caller's profile summary to the scoring service and returns its answer unchanged
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object "Scoring service payload"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 422 {object} dto.RecommendationErrorResponse "Profile missing or incomplete"
// @Failure 502 {object} dto.RecommendationErrorResponse "Scoring service error"
// @Failure 503 {object} dto.RecommendationErrorResponse "Scoring service unreachable"
// @Router /recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	accountID := middleware.CurrentAccountID(ctx)
	payload, err := c.recommendationService.Recommend(detached(ctx), accountID)
	if err != nil {
		if status, body, ok := recommendationError(err); ok {
			c.logger.Info().Err(err).Int64("accountID", accountID).Int("status", status).Msg("Recommendations unavailable")
			ctx.JSON(status, body)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", payload)
}

// GetScoringHealth reports whether the scoring service is up
// @Summary Scoring service health
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ScoringHealthResponse
// @Failure 502 {object} dto.RecommendationErrorResponse "Scoring service error"
// @Failure 503 {object} dto.RecommendationErrorResponse "Scoring service unreachable"
// @Router /recommendations/health [get]
func (c *RecommendationController) GetScoringHealth(ctx *gin.Context) {
	health, err := c.recommendationService.Health(detached(ctx))
	if err != nil {
		if status, body, ok := recommendationError(err); ok {
			ctx.JSON(status, body)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ScoringHealthResponse{
		Success:           true,
		Status:            health.Status,
		InternshipsLoaded: health.InternshipsLoaded,
	})
}
