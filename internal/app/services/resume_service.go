package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/extractor"
	"github.com/yigit/smartmatch/internal/pkg/filestorage"
)

const pdfContentType = "application/pdf"

// DefaultMaxResumeBytes is the upload limit when none is configured
const DefaultMaxResumeBytes int64 = 5 * 1024 * 1024

// ResumeConfig configures resume intake
type ResumeConfig struct {
	MaxBytes       int64
	DeleteReplaced bool
}

// ResumeService validates, stores and parses uploaded resumes
type ResumeService interface {
	// Store validates the upload and saves it, returning the new storage reference
	Store(ctx context.Context, accountID int64, fh *multipart.FileHeader) (string, error)
	// Extract runs the extractor against a stored resume
	Extract(ctx context.Context, ref string) (*models.ExtractedFields, error)
	// Retire removes a replaced resume when the configuration asks for it
	Retire(ctx context.Context, ref string)
	// Discard always removes ref
	Discard(ctx context.Context, ref string)
	MaxBytes() int64
}

type resumeServiceImpl struct {
	storage   filestorage.Storage
	extractor extractor.Extractor
	cfg       ResumeConfig
	logger    zerolog.Logger
}

// NewResumeService creates a new ResumeService
func NewResumeService(storage filestorage.Storage, ext extractor.Extractor, cfg ResumeConfig, logger zerolog.Logger) ResumeService {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxResumeBytes
	}
	return &resumeServiceImpl{
		storage:   storage,
		extractor: ext,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *resumeServiceImpl) MaxBytes() int64 {
	return s.cfg.MaxBytes
}

// Store checks size, sniffed type and PDF structure before anything is written
func (s *resumeServiceImpl) Store(ctx context.Context, accountID int64, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperrors.NewBadRequestError("no resume file provided")
	}
	if fh.Size > s.cfg.MaxBytes {
		return "", apperrors.ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidFileType, err)
	}
	if !mtype.Is(pdfContentType) {
		s.logger.Debug().Str("detected", mtype.String()).Int64("accountID", accountID).Msg("Rejected resume type")
		return "", apperrors.ErrInvalidFileType
	}

	if _, err := pdf.NewReader(file, fh.Size); err != nil {
		return "", fmt.Errorf("%w: not a readable PDF document", apperrors.ErrInvalidFileType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	name := fmt.Sprintf("%d_%s.pdf", accountID, uuid.New().String())
	ref, err := s.storage.Save(ctx, name, file, fh.Size, pdfContentType)
	if err != nil {
		s.logger.Error().Err(err).Int64("accountID", accountID).Msg("Failed to store resume")
		return "", err
	}

	s.logger.Info().Int64("accountID", accountID).Str("ref", ref).Msg("Resume stored")
	return ref, nil
}

func (s *resumeServiceImpl) Extract(ctx context.Context, ref string) (*models.ExtractedFields, error) {
	path, cleanup, err := s.storage.LocalPath(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}
	defer cleanup()

	result, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	return &models.ExtractedFields{
		Name:           result.Name,
		Email:          result.Email,
		Phone:          result.Phone,
		Education:      result.Education,
		Experience:     result.Experience,
		Projects:       result.Projects,
		Skills:         result.Skills,
		Certifications: result.Certifications,
	}, nil
}

func (s *resumeServiceImpl) Retire(ctx context.Context, ref string) {
	if !s.cfg.DeleteReplaced {
		return
	}
	s.Discard(ctx, ref)
}

func (s *resumeServiceImpl) Discard(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.storage.Delete(ctx, ref); err != nil {
		s.logger.Warn().Err(err).Str("ref", ref).Msg("Failed to delete resume")
	}
}
