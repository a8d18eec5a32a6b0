package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/events"
)

// RegistrationService defines the registration ledger
type RegistrationService interface {
	Register(ctx context.Context, accountID, internshipID int64) (*models.Registration, error)
	List(ctx context.Context, accountID int64) ([]*models.Registration, error)
}

type registrationServiceImpl struct {
	registrationRepo repositories.IRegistrationRepository
	internshipRepo   repositories.IInternshipRepository
	publisher        events.Publisher
	logger           zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	registrationRepo repositories.IRegistrationRepository,
	internshipRepo repositories.IInternshipRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		internshipRepo:   internshipRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// Register records the account's interest in an active internship.
// Duplicates are rejected by the unique (account_id, internship_id) constraint.
func (s *registrationServiceImpl) Register(ctx context.Context, accountID, internshipID int64) (*models.Registration, error) {
	if internshipID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTarget, "Invalid internship ID")
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInternshipNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidTarget, "Internship not found")
		}
		return nil, err
	}
	if !internship.IsActive {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTarget, "Internship is no longer accepting registrations")
	}

	reg := &models.Registration{
		AccountID:    accountID,
		InternshipID: internshipID,
		Status:       models.RegistrationStatusRegistered,
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	reg.InternshipTitle = internship.Title
	reg.CompanyName = internship.CompanyName

	s.logger.Info().Int64("accountID", accountID).Int64("internshipID", internshipID).Msg("Registration created")

	if err := s.publisher.Publish(ctx, events.RegistrationCreated, map[string]interface{}{
		"registrationId": reg.ID,
		"accountId":      accountID,
		"internshipId":   internshipID,
	}); err != nil {
		s.logger.Warn().Err(err).Int64("registrationID", reg.ID).Msg("Failed to publish registration event")
	}

	return reg, nil
}

func (s *registrationServiceImpl) List(ctx context.Context, accountID int64) ([]*models.Registration, error) {
	return s.registrationRepo.ListByAccount(ctx, accountID)
}
