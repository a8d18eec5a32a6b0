package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/auth"
	"github.com/yigit/smartmatch/internal/pkg/events"
	"github.com/yigit/smartmatch/internal/pkg/validation"
)

// AccountService defines signup and credential checks
type AccountService interface {
	Register(ctx context.Context, fullName, email, password string) (*models.Account, error)
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

type accountServiceImpl struct {
	accountRepo repositories.IAccountRepository
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo repositories.IAccountRepository, publisher events.Publisher, logger zerolog.Logger) AccountService {
	return &accountServiceImpl{
		accountRepo: accountRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignup(fullName, email, password string) error {
	if !validation.NewStringValidation(fullName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return fmt.Errorf("%w: full name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if !validation.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	return nil
}

// Register creates an account. The unique index on email decides duplicates.
func (s *accountServiceImpl) Register(ctx context.Context, fullName, email, password string) (*models.Account, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)

	if err := validateSignup(fullName, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			s.logger.Error().Err(err).Str("email", email).Msg("Failed to create account")
		}
		return nil, err
	}

	s.logger.Info().Int64("accountID", account.ID).Msg("Account registered")

	if err := s.publisher.Publish(ctx, events.AccountRegistered, map[string]interface{}{
		"accountId": account.ID,
		"email":     account.Email,
	}); err != nil {
		s.logger.Warn().Err(err).Int64("accountID", account.ID).Msg("Failed to publish account event")
	}

	account.PasswordHash = ""
	return account, nil
}

// Authenticate checks credentials and returns the account without its hash
func (s *accountServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		s.logger.Debug().Int64("accountID", account.ID).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	account.PasswordHash = ""
	return account, nil
}

// GetByID returns the account without its hash
func (s *accountServiceImpl) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}
