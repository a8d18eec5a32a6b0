package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

const resumeField = "resume"

// ProfileController handles the application profile API
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// resumeFromForm returns the single uploaded resume, nil when none was sent
func resumeFromForm(ctx *gin.Context) (*multipart.FileHeader, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.NewBadRequestError("could not read the uploaded form")
	}

	files := form.File[resumeField]
	switch len(files) {
	case 0:
		return nil, nil
	case 1:
		if files[0].Size == 0 && files[0].Filename == "" {
			return nil, nil
		}
		return files[0], nil
	default:
		return nil, apperrors.NewBadRequestError("only one resume file may be uploaded")
	}
}

// bindProfileForm binds and converts the submitted fields
func bindProfileForm(ctx *gin.Context) (*dto.ProfileInput, *dto.ErrorDetail, error) {
	var form dto.ProfileForm
	if err := ctx.ShouldBind(&form); err != nil {
		return nil, dto.HandleValidationError(err), nil
	}
	in, err := form.ToInput()
	if err != nil {
		return nil, nil, err
	}
	return in, nil, nil
}

// GetProfile returns the caller's profile
// @Summary Get my profile
// @Description Returns the signed-in account's application profile. profile is null when none exists yet.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileEnvelope
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Get(ctx.Request.Context(), middleware.CurrentAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProfileEnvelope{Success: true, Profile: dto.NewProfileResponse(profile)})
}

// SubmitProfile saves the application fields and an optional resume
// @Summary Submit my application
// @Description Saves the profile fields. An optional PDF resume (max 5MB) is stored and parsed.
// @Description A rejected file or a parsing problem does not prevent the fields from being saved.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param college formData string true "University or college"
// @Param degree formData string true "Degree"
// @Param grad_year formData string true "Current year"
// @Param cgpa formData number true "CGPA out of 10"
// @Param domain formData string true "Primary domain"
// @Param linkedin formData string false "LinkedIn URL"
// @Param github formData string false "GitHub URL"
// @Param skills formData string false "Key skills"
// @Param cover_letter formData string false "Mini cover letter"
// @Param experience_years formData number false "Years of experience"
// @Param certifications formData integer false "Number of certifications"
// @Param resume formData file false "Resume (PDF)"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [post]
func (c *ProfileController) SubmitProfile(ctx *gin.Context) {
	in, detail, err := bindProfileForm(ctx)
	if detail != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resume, err := resumeFromForm(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.profileService.Submit(detached(ctx), middleware.CurrentAccountID(ctx), in, resume)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubmissionResponse{
		Success:     true,
		Message:     result.Message,
		MessageType: result.MessageType,
		Warnings:    result.Warnings,
		Profile:     dto.NewProfileResponse(result.Profile),
	})
}
