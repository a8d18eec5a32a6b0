package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/helpers"
)

// InternshipController handles catalog reads
type InternshipController struct {
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(catalogService services.CatalogService, logger zerolog.Logger) *InternshipController {
	return &InternshipController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListInternships returns the active internships, all of them unless page or size is given
// @Summary List internships
// @Description Active internships, newest first
// @Tags internships
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.InternshipListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /internships [get]
func (c *InternshipController) ListInternships(ctx *gin.Context) {
	internships, err := c.catalogService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size, paginate := helpers.ParsePaginationParams(ctx)
	if !paginate {
		ctx.JSON(http.StatusOK, dto.NewInternshipListResponse(internships))
		return
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(internships))
	resp := dto.NewInternshipListResponse(internships[start:end])
	info := helpers.NewPaginationInfo(int64(len(internships)), page, size)
	resp.Pagination = &info
	ctx.JSON(http.StatusOK, resp)
}

// GetInternship returns one internship
// @Summary Get internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.InternshipEnvelope
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (c *InternshipController) GetInternship(ctx *gin.Context) {
	internship, err := c.catalogService.GetByID(ctx.Request.Context(), parseIDParam(ctx, "id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InternshipEnvelope{Success: true, Internship: dto.NewInternshipResponse(internship)})
}
