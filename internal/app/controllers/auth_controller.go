package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/session"
)

// SessionIssuer creates and destroys login sessions
type SessionIssuer interface {
	Create(ctx context.Context, accountID int64, displayName string) (*session.Session, string, error)
	Destroy(ctx context.Context, token string) error
}

// AuthController handles signup, login and logout
type AuthController struct {
	accountService services.AccountService
	sessions       SessionIssuer
	cookie         CookieConfig
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(accountService services.AccountService, sessions SessionIssuer, cookie CookieConfig, logger zerolog.Logger) *AuthController {
	return &AuthController{
		accountService: accountService,
		sessions:       sessions,
		cookie:         cookie,
		logger:         logger,
	}
}

// login authenticates and starts a session, setting the cookie
func (c *AuthController) login(ctx *gin.Context, email, password string) (*session.Session, string, error) {
	account, err := c.accountService.Authenticate(ctx.Request.Context(), email, password)
	if err != nil {
		return nil, "", err
	}

	s, token, err := c.sessions.Create(ctx.Request.Context(), account.ID, account.FullName)
	if err != nil {
		c.logger.Error().Err(err).Int64("accountID", account.ID).Msg("Failed to create session")
		return nil, "", err
	}

	c.cookie.set(ctx, token, s.ExpiresAt)
	c.logger.Info().Int64("accountID", account.ID).Msg("Account logged in")
	return s, token, nil
}

// logout destroys the current session and clears the cookie
func (c *AuthController) logout(ctx *gin.Context, token string) {
	if token != "" {
		if err := c.sessions.Destroy(ctx.Request.Context(), token); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to destroy session")
		}
	}
	c.cookie.clear(ctx)
}

// Register handles account signup
// @Summary Register a new account
// @Description Creates an account. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Signup information"
// @Success 201 {object} dto.APIResponse{data=dto.AccountResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	account, err := c.accountService.Register(ctx.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAccountResponse(account), "Account created successfully"))
}

// Login handles API login
// @Summary Log in
// @Description Verifies credentials, starts a session and returns its token. The session cookie is set as well.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	s, token, err := c.login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		AccountID:   s.AccountID,
		DisplayName: s.DisplayName,
		Token:       token,
		ExpiresAt:   s.ExpiresAt,
	}, "Login successful"))
}

// Logout ends the current session
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.logout(ctx, middleware.CurrentToken(ctx))
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Logged out"})
}

// Me returns the signed-in account
// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	account, err := c.accountService.GetByID(ctx.Request.Context(), middleware.CurrentAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAccountResponse(account), ""))
}

