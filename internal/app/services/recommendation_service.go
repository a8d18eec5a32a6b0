package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
)

// ScoringClient is the external scoring service
type ScoringClient interface {
	Recommend(ctx context.Context, req scoring.Request) (json.RawMessage, error)
	Health(ctx context.Context) (*scoring.Health, error)
}

// RecommendationService builds the profile summary and asks the scoring service for matches
type RecommendationService interface {
	// Recommend returns the scoring payload untouched
	Recommend(ctx context.Context, accountID int64) (json.RawMessage, error)
	Health(ctx context.Context) (*scoring.Health, error)
}

type recommendationServiceImpl struct {
	profileRepo repositories.IProfileRepository
	scoring     ScoringClient
	logger      zerolog.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(profileRepo repositories.IProfileRepository, client ScoringClient, logger zerolog.Logger) RecommendationService {
	return &recommendationServiceImpl{
		profileRepo: profileRepo,
		scoring:     client,
		logger:      logger,
	}
}

func (s *recommendationServiceImpl) Recommend(ctx context.Context, accountID int64) (json.RawMessage, error) {
	profile, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	if profile.Domain == "" || profile.CGPA == nil {
		return nil, apperrors.ErrIncompleteProfile
	}

	req := scoring.Request{
		Domain: profile.Domain,
		CGPA:   *profile.CGPA,
	}
	if profile.ExperienceYears != nil {
		req.ExperienceYears = *profile.ExperienceYears
	}
	if profile.CertificationsCount != nil {
		req.Certifications = *profile.CertificationsCount
	}

	payload, err := s.scoring.Recommend(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Int64("accountID", accountID).Msg("Scoring request failed")
		return nil, err
	}
	return payload, nil
}

func (s *recommendationServiceImpl) Health(ctx context.Context) (*scoring.Health, error) {
	return s.scoring.Health(ctx)
}
