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
	"github.com/yigit/smartmatch/internal/pkg/logger"
)

var internshipColumns = []string{
	"id", "title", "company_name", "description", "required_domain", "min_cgpa", "required_experience",
	"min_certifications", "location", "duration_months", "stipend", "application_deadline", "is_active", "created_at",
}

// InternshipRepository handles catalog database operations
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	i := &models.Internship{}
	err := row.Scan(&i.ID, &i.Title, &i.CompanyName, &i.Description, &i.RequiredDomain, &i.MinCGPA,
		&i.RequiredExperience, &i.MinCertifications, &i.Location, &i.DurationMonths, &i.Stipend,
		&i.ApplicationDeadline, &i.IsActive, &i.CreatedAt)
	return i, err
}

// ListActive retrieves active internships, newest first
func (r *InternshipRepository) ListActive(ctx context.Context) ([]*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list internships query")
		return nil, apperrors.NewPersistenceError("list internships", err)
	}
	defer rows.Close()

	internships := []*models.Internship{}
	for rows.Next() {
		i, err := scanInternship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning internship row")
			return nil, apperrors.NewPersistenceError("scan internship", err)
		}
		internships = append(internships, i)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("iterate internships", err)
	}

	return internships, nil
}

// GetByID retrieves one internship regardless of its active flag
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	i, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error scanning internship row")
		return nil, apperrors.NewPersistenceError("get internship", err)
	}
	return i, nil
}

// Create inserts a catalog entry
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	sql, args, err := r.sb.Insert("internships").
		Columns("title", "company_name", "description", "required_domain", "min_cgpa", "required_experience",
			"min_certifications", "location", "duration_months", "stipend", "application_deadline", "is_active").
		Values(i.Title, i.CompanyName, i.Description, i.RequiredDomain, i.MinCGPA, i.RequiredExperience,
			i.MinCertifications, i.Location, i.DurationMonths, i.Stipend, i.ApplicationDeadline, i.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create internship query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&i.ID, &i.CreatedAt); err != nil {
		return apperrors.NewPersistenceError("create internship", err)
	}
	return nil
}

// Count returns the number of catalog rows, active or not
func (r *InternshipRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("internships").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count internships query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperrors.NewPersistenceError("count internships", err)
	}
	return n, nil
}
