package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/auth"
	"github.com/yigit/smartmatch/internal/pkg/session"
)

// Context keys set by the session guard
const (
	ContextSessionKey   = "session"
	ContextAccountIDKey = "accountID"
	ContextTokenKey     = "sessionToken"
)

// LoginPath is where protected pages send anonymous visitors
const LoginPath = "/login"

// SessionResolver loads the live session behind a token
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

// AuthMiddleware guards pages and API routes with the server-side session
type AuthMiddleware struct {
	sessions   SessionResolver
	cookieName string
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions SessionResolver, cookieName string, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// TokenFromRequest reads the session cookie, falling back to the Authorization header
func (m *AuthMiddleware) TokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); header != "" {
		if token, err := auth.ExtractBearerToken(header); err == nil {
			return token
		}
	}
	return ""
}

// attach resolves the request's session and stores it in the gin context
func (m *AuthMiddleware) attach(c *gin.Context) error {
	token := m.TokenFromRequest(c)
	if token == "" {
		return apperrors.ErrNotAuthenticated
	}

	s, err := m.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		return err
	}

	c.Set(ContextSessionKey, s)
	c.Set(ContextAccountIDKey, s.AccountID)
	c.Set(ContextTokenKey, token)
	return nil
}

func isAnonymous(err error) bool {
	return apperrors.Is(err, apperrors.ErrNotAuthenticated, apperrors.ErrSessionNotFound, apperrors.ErrSessionExpired)
}

// RequireAPI aborts with 401 when the request carries no live session
func (m *AuthMiddleware) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := m.attach(c)
		if err == nil {
			c.Next()
			return
		}

		if !isAnonymous(err) {
			m.logger.Error().Err(err).Msg("Session lookup failed")
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		if errors.Is(err, apperrors.ErrSessionExpired) {
			errorDetail = dto.NewErrorDetail(dto.ErrorCodeSessionExpired, "Session expired")
		}
		errorDetail = errorDetail.WithDetails("Please log in to continue")

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
}

// RequirePage redirects anonymous visitors to the login page
func (m *AuthMiddleware) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.attach(c); err != nil {
			if !isAnonymous(err) {
				m.logger.Error().Err(err).Msg("Session lookup failed")
			}
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Optional attaches the session when one is present and never blocks
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.attach(c); err != nil && !isAnonymous(err) {
			m.logger.Warn().Err(err).Msg("Session lookup failed")
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by the guard
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}

// CurrentAccountID returns the authenticated account id, 0 when anonymous
func CurrentAccountID(c *gin.Context) int64 {
	return c.GetInt64(ContextAccountIDKey)
}

// CurrentToken returns the session token the request authenticated with
func CurrentToken(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
