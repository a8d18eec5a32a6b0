package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/smartmatch/internal/app/controllers"
	"github.com/yigit/smartmatch/internal/app/views"
	"github.com/yigit/smartmatch/internal/middleware"
)

func noLimit(c *gin.Context) { c.Next() }

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth           *controllers.AuthController
	Profile        *controllers.ProfileController
	Internship     *controllers.InternshipController
	Recommendation *controllers.RecommendationController
	Registration   *controllers.RegistrationController
	Page           *controllers.PageController
	Health         *controllers.HealthController
}

// SetupRouter configures all application routes. loginLimiter may be nil.
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	var apiThrottle, pageThrottle gin.HandlerFunc = noLimit, noLimit
	if loginLimiter != nil {
		apiThrottle, pageThrottle = loginLimiter.API(), loginLimiter.Page("login.html")
	}

	router.StaticFS("/static", http.FS(views.Static()))
	router.GET("/health", ctrl.Health.Health)

	// --- Pages ---
	router.GET("/", authMiddleware.Optional(), ctrl.Page.Home)
	router.GET("/signup", authMiddleware.Optional(), ctrl.Page.SignupForm)
	router.POST("/signup", ctrl.Page.Signup)
	router.GET("/login", authMiddleware.Optional(), ctrl.Page.LoginForm)
	router.POST("/login", pageThrottle, ctrl.Page.Login)
	router.GET("/logout", authMiddleware.Optional(), ctrl.Page.Logout)
	router.POST("/logout", authMiddleware.Optional(), ctrl.Page.Logout)

	pages := router.Group("")
	pages.Use(authMiddleware.RequirePage())
	{
		pages.GET("/dashboard", ctrl.Page.Dashboard)
		pages.GET("/apply", ctrl.Page.ApplyForm)
		pages.POST("/apply", ctrl.Page.Apply)
		pages.GET("/profile", ctrl.Page.Profile)
	}

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", ctrl.Health.Health)

	// --- Public API routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", apiThrottle, ctrl.Auth.Login)
	}

	internships := v1.Group("/internships")
	{
		internships.GET("", ctrl.Internship.ListInternships)
		internships.GET("/:id", ctrl.Internship.GetInternship)
	}

	// --- Authenticated API routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAPI())
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.GET("/auth/me", ctrl.Auth.Me)

		authenticated.GET("/profile", ctrl.Profile.GetProfile)
		authenticated.POST("/profile", ctrl.Profile.SubmitProfile)

		authenticated.GET("/recommendations", ctrl.Recommendation.GetRecommendations)
		authenticated.GET("/recommendations/health", ctrl.Recommendation.GetScoringHealth)

		authenticated.POST("/registrations", ctrl.Registration.Register)
		authenticated.GET("/registrations", ctrl.Registration.ListRegistrations)
	}
}
