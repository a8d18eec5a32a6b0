package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/dberrors"
	"github.com/yigit/smartmatch/internal/pkg/logger"
)

// RegistrationRepository handles registration database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts the registration unless the (account, internship) pair already exists.
// The unique constraint settles concurrent submissions: the loser gets no row back.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	if reg.Status == "" {
		reg.Status = models.RegistrationStatusRegistered
	}

	sql, args, err := r.sb.Insert("registrations").
		Columns("account_id", "internship_id", "status").
		Values(reg.AccountID, reg.InternshipID, reg.Status).
		Suffix("ON CONFLICT (account_id, internship_id) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create registration query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAlreadyRegistered
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidTarget
		}
		logger.Error().Err(err).Int64("accountID", reg.AccountID).Int64("internshipID", reg.InternshipID).
			Msg("Error creating registration")
		return apperrors.NewPersistenceError("create registration", err)
	}

	return nil
}

// ListByAccount returns the account's registrations with internship title and company, newest first
func (r *RegistrationRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.Registration, error) {
	sql, args, err := r.sb.Select("r.id", "r.account_id", "r.internship_id", "r.status", "r.created_at",
		"i.title", "i.company_name").
		From("registrations r").
		Join("internships i ON i.id = r.internship_id").
		Where(squirrel.Eq{"r.account_id": accountID}).
		OrderBy("r.created_at DESC", "r.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error listing registrations")
		return nil, apperrors.NewPersistenceError("list registrations", err)
	}
	defer rows.Close()

	regs := []*models.Registration{}
	for rows.Next() {
		reg := &models.Registration{}
		if err := rows.Scan(&reg.ID, &reg.AccountID, &reg.InternshipID, &reg.Status, &reg.CreatedAt,
			&reg.InternshipTitle, &reg.CompanyName); err != nil {
			return nil, apperrors.NewPersistenceError("scan registration", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("iterate registrations", err)
	}

	return regs, nil
}
