// Package session keeps the server-side record behind the signed cookie handed to browsers.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/auth"
)

// Session is the authenticated identity attached to a request
type Session struct {
	ID          string    `json:"id"`
	AccountID   int64     `json:"accountId"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store persists sessions. Get returns apperrors.ErrSessionNotFound for unknown ids.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Manager creates, resolves and destroys sessions
type Manager struct {
	store  Store
	tokens *auth.SessionTokenService
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a session manager
func NewManager(store Store, tokens *auth.SessionTokenService, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		tokens: tokens,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of new sessions
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores a new session and returns it with its signed token
func (m *Manager) Create(ctx context.Context, accountID int64, displayName string) (*Session, string, error) {
	now := m.now()
	s := &Session{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		DisplayName: displayName,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.ttl),
	}

	token, err := m.tokens.Issue(s.ID, accountID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	if err := m.store.Save(ctx, s); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	return s, token, nil
}

// Resolve validates the token and loads the live session behind it
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNotAuthenticated, err)
	}

	s, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}

	accountID, _ := claims.AccountID()
	if s.AccountID != accountID {
		return nil, apperrors.ErrNotAuthenticated
	}

	if s.Expired(m.now()) {
		_ = m.store.Delete(ctx, s.ID)
		return nil, apperrors.ErrSessionExpired
	}

	return s, nil
}

// Destroy removes the session behind token. Unknown or invalid tokens are ignored.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	claims, err := m.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}
