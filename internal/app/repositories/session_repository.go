package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/session"
)

// SessionRepository is the postgres-backed session.Store
type SessionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var _ session.Store = (*SessionRepository)(nil)

// Save inserts the session or refreshes its expiry
func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	sql, args, err := r.sb.Insert("sessions").
		Columns("id", "account_id", "display_name", "created_at", "expires_at").
		Values(s.ID, s.AccountID, s.DisplayName, s.CreatedAt, s.ExpiresAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build save session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperrors.NewPersistenceError("save session", err)
	}
	return nil
}

// Get loads a session by id
func (r *SessionRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	sql, args, err := r.sb.Select("id::text", "account_id", "display_name", "created_at", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	s := &session.Session{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.AccountID, &s.DisplayName, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.NewPersistenceError("get session", err)
	}
	return s, nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("sessions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete session query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperrors.NewPersistenceError("delete session", err)
	}
	return nil
}

// DeleteExpired removes sessions that expired before now and returns how many were removed
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := r.sb.Delete("sessions").Where(squirrel.Lt{"expires_at": now}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purge sessions query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, apperrors.NewPersistenceError("purge sessions", err)
	}
	return tag.RowsAffected(), nil
}
