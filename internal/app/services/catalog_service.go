package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// CatalogService defines read access to the internship catalog
type CatalogService interface {
	ListActive(ctx context.Context) ([]*models.Internship, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
}

type catalogServiceImpl struct {
	internshipRepo repositories.IInternshipRepository
	logger         zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(internshipRepo repositories.IInternshipRepository, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// ListActive returns active internships, newest first
func (s *catalogServiceImpl) ListActive(ctx context.Context) ([]*models.Internship, error) {
	internships, err := s.internshipRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list internships")
		return nil, err
	}
	return internships, nil
}

func (s *catalogServiceImpl) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	if id <= 0 {
		return nil, apperrors.ErrInternshipNotFound
	}
	return s.internshipRepo.GetByID(ctx, id)
}
