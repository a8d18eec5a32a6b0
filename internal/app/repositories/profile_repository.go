package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/dberrors"
	"github.com/yigit/smartmatch/internal/pkg/logger"
)

// profileMutableColumns are replaced wholesale on every upsert
var profileMutableColumns = []string{
	"college", "degree", "grad_year", "cgpa", "linkedin_url", "github_url", "domain",
	"skills", "cover_letter", "experience_years", "certifications_count", "resume_path",
	"extracted_name", "extracted_email", "extracted_phone", "extracted_education",
	"extracted_experience", "extracted_projects", "extracted_skills", "extracted_certifications",
}

var profileUpsertSuffix = buildProfileUpsertSuffix()

func buildProfileUpsertSuffix() string {
	sets := make([]string, 0, len(profileMutableColumns)+1)
	for _, col := range profileMutableColumns {
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	sets = append(sets, "updated_at = NOW()")
	return "ON CONFLICT (account_id) DO UPDATE SET " + strings.Join(sets, ", ") + " RETURNING created_at, updated_at"
}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByAccountID returns the account's profile, or nil when none exists yet
func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Profile, error) {
	columns := append([]string{"account_id"}, profileMutableColumns...)
	columns = append(columns, "created_at", "updated_at")

	sql, args, err := r.sb.Select(columns...).
		From("profiles").
		Where(squirrel.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p := &models.Profile{}
	x := &p.Extracted
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.AccountID, &p.College, &p.Degree, &p.GradYear, &p.CGPA, &p.LinkedInURL, &p.GitHubURL, &p.Domain,
		&p.Skills, &p.CoverLetter, &p.ExperienceYears, &p.CertificationsCount, &p.ResumePath,
		&x.Name, &x.Email, &x.Phone, &x.Education, &x.Experience, &x.Projects, &x.Skills, &x.Certifications,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("accountID", accountID).Msg("Error scanning profile row")
		return nil, apperrors.NewPersistenceError("get profile", err)
	}

	return p, nil
}

// Upsert inserts or fully replaces the account's profile in one statement
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.Profile) error {
	x := p.Extracted
	sql, args, err := r.sb.Insert("profiles").
		Columns(append([]string{"account_id"}, profileMutableColumns...)...).
		Values(
			p.AccountID, p.College, p.Degree, p.GradYear, p.CGPA, p.LinkedInURL, p.GitHubURL, p.Domain,
			p.Skills, p.CoverLetter, p.ExperienceYears, p.CertificationsCount, p.ResumePath,
			x.Name, x.Email, x.Phone, x.Education, x.Experience, x.Projects, x.Skills, x.Certifications,
		).
		Suffix(profileUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if dberrors.IsCheckViolation(err, "profiles_cgpa_check") {
			return fmt.Errorf("%w: cgpa must be between 0 and 10", apperrors.ErrValidationFailed)
		}
		logger.Error().Err(err).Int64("accountID", p.AccountID).Msg("Error upserting profile")
		return apperrors.NewPersistenceError("upsert profile", err)
	}

	return nil
}
