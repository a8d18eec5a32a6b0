package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// RegistrationController handles internship registrations
type RegistrationController struct {
	registrationService services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register records the caller's registration for an internship
// @Summary Register for an internship
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterInternshipRequest true "Internship to register for"
// @Success 200 {object} dto.RegistrationResponse "Registered"
// @Failure 400 {object} dto.RegistrationResponse "Invalid internship"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.RegistrationResponse "Already registered"
// @Router /registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterInternshipRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.RegistrationResponse{Success: false, Message: "Invalid internship ID"})
		return
	}

	reg, err := c.registrationService.Register(ctx.Request.Context(), middleware.CurrentAccountID(ctx), req.InternshipID)
	if err != nil {
		var custom *apperrors.CustomError
		switch {
		case errors.Is(err, apperrors.ErrAlreadyRegistered):
			ctx.JSON(http.StatusConflict, dto.RegistrationResponse{
				Success: false,
				Message: "You have already registered for this internship",
			})
		case errors.Is(err, apperrors.ErrInvalidTarget):
			message := "Invalid internship ID"
			if errors.As(err, &custom) && custom.Message != "" {
				message = custom.Message
			}
			ctx.JSON(http.StatusBadRequest, dto.RegistrationResponse{Success: false, Message: message})
		default:
			middleware.HandleAPIError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.RegistrationResponse{
		Success:         true,
		Message:         fmt.Sprintf("Successfully registered for %s at %s", reg.InternshipTitle, reg.CompanyName),
		InternshipTitle: reg.InternshipTitle,
		CompanyName:     reg.CompanyName,
	})
}

// ListRegistrations returns the caller's registrations
// @Summary List my registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.RegistrationListResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	regs, err := c.registrationService.List(ctx.Request.Context(), middleware.CurrentAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRegistrationListResponse(regs))
}
