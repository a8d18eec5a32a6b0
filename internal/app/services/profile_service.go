package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/events"
	"github.com/yigit/smartmatch/internal/pkg/validation"
)

// Submission outcome messages
const (
	MsgSubmissionSaved       = "Your details and resume data have been saved successfully!"
	msgParsingWarningPrefix  = "Details saved, but Resume Parsing Warning: "
	msgInvalidResumeType     = "Error: Only PDF files are allowed. Your other details were saved."
	msgResumeUploadFailed    = "Error: Resume could not be uploaded. Your other details were saved."
	msgResumeTooLargePattern = "Error: File is larger than %dMB. Your other details were saved."
)

// SubmitResult describes what a profile submission did
type SubmitResult struct {
	Profile     *models.Profile
	Message     string
	MessageType models.MessageType
	Warnings    []string
}

// ProfileService defines profile reads and the application submission
type ProfileService interface {
	// Get returns nil without error when the account has no profile yet
	Get(ctx context.Context, accountID int64) (*models.Profile, error)
	// Upsert replaces the text fields and keeps the stored resume
	Upsert(ctx context.Context, accountID int64, in *dto.ProfileInput) (*models.Profile, error)
	// Submit saves the fields, an optional resume, and the data extracted from it
	Submit(ctx context.Context, accountID int64, in *dto.ProfileInput, resume *multipart.FileHeader) (*SubmitResult, error)
}

type profileServiceImpl struct {
	profileRepo repositories.IProfileRepository
	resumes     ResumeService
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo repositories.IProfileRepository,
	resumes ResumeService,
	publisher events.Publisher,
	logger zerolog.Logger,
) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		resumes:     resumes,
		publisher:   publisher,
		logger:      logger,
	}
}

func validateProfileInput(in *dto.ProfileInput) error {
	if in == nil {
		return fmt.Errorf("%w: profile is empty", apperrors.ErrValidationFailed)
	}

	required := []struct{ name, value string }{
		{"college", in.College},
		{"degree", in.Degree},
		{"graduation year", in.GradYear},
		{"domain", in.Domain},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", apperrors.ErrValidationFailed, f.name)
		}
	}

	if in.CGPA == nil {
		return fmt.Errorf("%w: cgpa is required", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidCGPA(*in.CGPA) {
		return fmt.Errorf("%w: cgpa must be between %.0f and %.0f",
			apperrors.ErrValidationFailed, validation.CGPAMin, validation.CGPAMax)
	}
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years cannot be negative", apperrors.ErrValidationFailed)
	}
	if in.CertificationsCount != nil && *in.CertificationsCount < 0 {
		return fmt.Errorf("%w: certifications cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// mergeProfile applies the input on top of the existing row, keeping resume data
func mergeProfile(accountID int64, existing *models.Profile, in *dto.ProfileInput) *models.Profile {
	p := &models.Profile{AccountID: accountID}
	if existing != nil {
		p.ResumePath = existing.ResumePath
		p.Extracted = existing.Extracted
		p.CreatedAt = existing.CreatedAt
	}

	p.College = in.College
	p.Degree = in.Degree
	p.GradYear = in.GradYear
	p.CGPA = in.CGPA
	p.LinkedInURL = in.LinkedInURL
	p.GitHubURL = in.GitHubURL
	p.Domain = in.Domain
	p.Skills = in.Skills
	p.CoverLetter = in.CoverLetter
	p.ExperienceYears = in.ExperienceYears
	p.CertificationsCount = in.CertificationsCount
	return p
}

func (s *profileServiceImpl) Get(ctx context.Context, accountID int64) (*models.Profile, error) {
	return s.profileRepo.GetByAccountID(ctx, accountID)
}

func (s *profileServiceImpl) Upsert(ctx context.Context, accountID int64, in *dto.ProfileInput) (*models.Profile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := mergeProfile(accountID, existing, in)
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.publishUpdate(ctx, profile, false)
	return profile, nil
}

func (s *profileServiceImpl) Submit(ctx context.Context, accountID int64, in *dto.ProfileInput, resume *multipart.FileHeader) (*SubmitResult, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile := mergeProfile(accountID, existing, in)
	result := &SubmitResult{
		Profile:     profile,
		Message:     MsgSubmissionSaved,
		MessageType: models.MessageTypeSuccess,
	}

	var oldRef, newRef string
	if existing.HasResume() {
		oldRef = *existing.ResumePath
	}

	rejected := false
	if resume != nil {
		ref, err := s.resumes.Store(ctx, accountID, resume)
		if err != nil {
			rejected = true
			result.MessageType = models.MessageTypeError
			result.Message = s.rejectionMessage(err)
			s.logger.Info().Err(err).Int64("accountID", accountID).Msg("Resume rejected")
		} else {
			newRef = ref
			profile.ResumePath = &newRef
			// Fields extracted from the previous file no longer apply
			profile.Extracted = models.ExtractedFields{}
		}
	}

	if profile.HasResume() && !rejected {
		fields, err := s.resumes.Extract(ctx, *profile.ResumePath)
		if err != nil {
			warning := err.Error()
			result.Warnings = append(result.Warnings, warning)
			result.Message = msgParsingWarningPrefix + warning
			s.logger.Warn().Err(err).Int64("accountID", accountID).Msg("Resume extraction failed")
		} else {
			profile.Extracted = *fields
		}
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		if newRef != "" {
			s.resumes.Discard(ctx, newRef)
		}
		return nil, err
	}

	if newRef != "" && oldRef != "" && oldRef != newRef {
		s.resumes.Retire(ctx, oldRef)
	}

	s.publishUpdate(ctx, profile, newRef != "")
	return result, nil
}

func (s *profileServiceImpl) rejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return fmt.Sprintf(msgResumeTooLargePattern, s.resumes.MaxBytes()/(1024*1024))
	case errors.Is(err, apperrors.ErrInvalidFileType):
		return msgInvalidResumeType
	default:
		return msgResumeUploadFailed
	}
}

func (s *profileServiceImpl) publishUpdate(ctx context.Context, p *models.Profile, resumeReplaced bool) {
	err := s.publisher.Publish(ctx, events.ProfileUpdated, map[string]interface{}{
		"accountId":      p.AccountID,
		"domain":         p.Domain,
		"hasResume":      p.HasResume(),
		"resumeReplaced": resumeReplaced,
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("accountID", p.AccountID).Msg("Failed to publish profile event")
	}
}
