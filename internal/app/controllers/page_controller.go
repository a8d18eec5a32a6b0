package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/app/views"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
)

// PageController serves the HTML pages of the portal
type PageController struct {
	auth           *AuthController
	accountService services.AccountService
	profileService services.ProfileService
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(
	auth *AuthController,
	accountService services.AccountService,
	profileService services.ProfileService,
	catalogService services.CatalogService,
	logger zerolog.Logger,
) *PageController {
	return &PageController{
		auth:           auth,
		accountService: accountService,
		profileService: profileService,
		catalogService: catalogService,
		logger:         logger,
	}
}

func (c *PageController) render(ctx *gin.Context, status int, name string, data gin.H) {
	if s, ok := middleware.CurrentSession(ctx); ok {
		data["LoggedIn"] = true
		data["DisplayName"] = s.DisplayName
	}
	ctx.HTML(status, name, data)
}

func (c *PageController) serverError(ctx *gin.Context, err error) {
	c.logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Page failed")
	c.render(ctx, http.StatusInternalServerError, "error.html", gin.H{
		"Message": "Something went wrong. Please try again later.",
	})
}

// Home shows the landing page, with the catalog for signed-in users
func (c *PageController) Home(ctx *gin.Context) {
	data := gin.H{"Flash": popFlash(ctx)}

	if accountID := middleware.CurrentAccountID(ctx); accountID != 0 {
		profile, err := c.profileService.Get(ctx.Request.Context(), accountID)
		if err != nil {
			c.serverError(ctx, err)
			return
		}
		internships, err := c.catalogService.ListActive(ctx.Request.Context())
		if err != nil {
			c.serverError(ctx, err)
			return
		}
		data["HasProfile"] = profile != nil
		data["Internships"] = dto.NewInternshipListResponse(internships).Internships
	}

	c.render(ctx, http.StatusOK, "home.html", data)
}

// SignupForm shows the signup page
func (c *PageController) SignupForm(ctx *gin.Context) {
	c.render(ctx, http.StatusOK, "signup.html", gin.H{})
}

// Signup creates the account and sends the user to the login page
func (c *PageController) Signup(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.render(ctx, http.StatusBadRequest, "signup.html", gin.H{
			"Message":  "Please enter your name, a valid email and a password of at least 8 characters.",
			"FullName": req.FullName,
			"Email":    req.Email,
		})
		return
	}

	_, err := c.accountService.Register(ctx.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		message := "Error creating account!"
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			message, status = "Email already exists. Try logging in.", http.StatusConflict
		case errors.Is(err, apperrors.ErrValidationFailed):
			message, status = err.Error(), http.StatusBadRequest
		default:
			c.logger.Error().Err(err).Msg("Signup failed")
		}
		c.render(ctx, status, "signup.html", gin.H{"Message": message, "FullName": req.FullName, "Email": req.Email})
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/login?signup=success")
}

// LoginForm shows the login page
func (c *PageController) LoginForm(ctx *gin.Context) {
	data := gin.H{}
	if ctx.Query("signup") == "success" {
		data["Notice"] = "Account created! Please log in."
	}
	c.render(ctx, http.StatusOK, "login.html", data)
}

// Login starts a session and goes to the landing page
func (c *PageController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.render(ctx, http.StatusBadRequest, "login.html", gin.H{"Error": "Please enter your email and password."})
		return
	}

	if _, _, err := c.auth.login(ctx, req.Email, req.Password); err != nil {
		message := "Something went wrong. Please try again."
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrAccountNotFound):
			message, status = "No account found with that email!", http.StatusUnauthorized
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			message, status = "Invalid password!", http.StatusUnauthorized
		case errors.Is(err, apperrors.ErrValidationFailed):
			message, status = "Please enter your email and password.", http.StatusBadRequest
		}
		c.render(ctx, status, "login.html", gin.H{"Error": message, "Email": req.Email})
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/")
}

// Logout ends the session and returns to the login page
func (c *PageController) Logout(ctx *gin.Context) {
	token := middleware.CurrentToken(ctx)
	if token == "" {
		token, _ = ctx.Cookie(c.auth.cookie.Name)
	}
	c.auth.logout(ctx, token)
	ctx.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard greets the signed-in user
func (c *PageController) Dashboard(ctx *gin.Context) {
	c.render(ctx, http.StatusOK, "dashboard.html", gin.H{})
}

// ApplyForm shows the application form pre-filled from the stored profile
func (c *PageController) ApplyForm(ctx *gin.Context) {
	profile, err := c.profileService.Get(ctx.Request.Context(), middleware.CurrentAccountID(ctx))
	if err != nil {
		c.serverError(ctx, err)
		return
	}
	if profile == nil {
		profile = &models.Profile{}
	}

	c.render(ctx, http.StatusOK, "apply.html", gin.H{
		"Flash":     popFlash(ctx),
		"Profile":   profile,
		"GradYears": views.GradYears,
		"Domains":   views.Domains,
	})
}

// Apply saves the application and redirects back to the form with the outcome
func (c *PageController) Apply(ctx *gin.Context) {
	in, detail, err := bindProfileForm(ctx)
	if detail != nil {
		setFlash(ctx, "Error: Please fill in all required fields.", models.MessageTypeError)
		ctx.Redirect(http.StatusSeeOther, "/apply")
		return
	}
	if err != nil {
		setFlash(ctx, "Error: "+err.Error(), models.MessageTypeError)
		ctx.Redirect(http.StatusSeeOther, "/apply")
		return
	}

	resume, err := resumeFromForm(ctx)
	if err != nil {
		setFlash(ctx, "Error: "+err.Error(), models.MessageTypeError)
		ctx.Redirect(http.StatusSeeOther, "/apply")
		return
	}

	result, err := c.profileService.Submit(detached(ctx), middleware.CurrentAccountID(ctx), in, resume)
	switch {
	case err == nil:
		setFlash(ctx, result.Message, result.MessageType)
	case errors.Is(err, apperrors.ErrValidationFailed):
		setFlash(ctx, "Error: "+err.Error(), models.MessageTypeError)
	default:
		c.logger.Error().Err(err).Int64("accountID", middleware.CurrentAccountID(ctx)).Msg("Application submission failed")
		setFlash(ctx, "Error: Could not save your details. Please try again.", models.MessageTypeError)
	}
	ctx.Redirect(http.StatusSeeOther, "/apply")
}

// Profile shows the account together with the saved application
func (c *PageController) Profile(ctx *gin.Context) {
	accountID := middleware.CurrentAccountID(ctx)
	account, err := c.accountService.GetByID(ctx.Request.Context(), accountID)
	if err != nil {
		c.serverError(ctx, err)
		return
	}
	profile, err := c.profileService.Get(ctx.Request.Context(), accountID)
	if err != nil {
		c.serverError(ctx, err)
		return
	}

	c.render(ctx, http.StatusOK, "profile.html", gin.H{
		"Account": account,
		"Profile": profile,
	})
}
