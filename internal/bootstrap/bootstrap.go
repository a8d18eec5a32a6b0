package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/smartmatch/internal/app/controllers"
	appMigrations "github.com/yigit/smartmatch/internal/app/migrations"
	appRepos "github.com/yigit/smartmatch/internal/app/repositories"
	appRoutes "github.com/yigit/smartmatch/internal/app/routes"
	appServices "github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/app/views"
	"github.com/yigit/smartmatch/internal/config"
	"github.com/yigit/smartmatch/internal/db"
	appMiddleware "github.com/yigit/smartmatch/internal/middleware"
	pkgAuth "github.com/yigit/smartmatch/internal/pkg/auth"
	"github.com/yigit/smartmatch/internal/pkg/events"
	"github.com/yigit/smartmatch/internal/pkg/extractor"
	"github.com/yigit/smartmatch/internal/pkg/filestorage"
	"github.com/yigit/smartmatch/internal/pkg/helpers"
	"github.com/yigit/smartmatch/internal/pkg/logger"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
	"github.com/yigit/smartmatch/internal/pkg/session"
	"github.com/yigit/smartmatch/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	Sessions       *session.Manager
	SessionStore   session.Store
	Publisher      events.Publisher
	Logger         zerolog.Logger

	redis *redis.Client
}

// Close releases connections held by the dependencies
func (d *Dependencies) Close() {
	if d.Publisher != nil {
		if err := d.Publisher.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("SMARTMATCH_CONFIG"); p != "" {
		configPath = p
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds the catalog.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, logger.Component("migrations"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedCatalog {
		if err := seed.SeedCatalog(ctx, appRepos.NewInternshipRepository(dbPool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed internship catalog, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// setupSessionStore picks the session backend named in the config
func setupSessionStore(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, deps *Dependencies) (session.Store, error) {
	switch strings.ToLower(cfg.Session.Store) {
	case "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		rdb, err := session.NewRedisClient(ctx, session.RedisConfig{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			Prefix:   cfg.Session.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		deps.redis = rdb
		return session.NewRedisStore(rdb, cfg.Session.Redis.Prefix), nil
	default:
		return repos.SessionRepository, nil
	}
}

// setupStorage picks the resume storage backend named in the config
func setupStorage(ctx context.Context, cfg *config.Config) (filestorage.Storage, error) {
	if strings.ToLower(cfg.Storage.Driver) == "s3" {
		s3cfg := filestorage.S3Config{
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			Prefix:    cfg.Storage.S3.Prefix,
		}
		client, err := filestorage.NewS3Client(ctx, s3cfg)
		if err != nil {
			return nil, err
		}
		return filestorage.NewS3Storage(client, s3cfg.Bucket, s3cfg.Prefix), nil
	}
	return filestorage.NewLocalStorage(cfg.Storage.Path)
}

// setupPublisher connects to the broker when one is configured
func setupPublisher(cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if cfg.Events.AMQPURL == "" {
		return events.NoopPublisher{}
	}
	p, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		lgr.Warn().Err(err).Msg("Event broker unavailable, domain events disabled")
		return events.NoopPublisher{}
	}
	lgr.Info().Str("exchange", cfg.Events.Exchange).Msg("Publishing domain events")
	return p
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(dbPool)

	store, err := setupSessionStore(ctx, cfg, deps.Repos, deps)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize session store")
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	deps.SessionStore = store

	storage, err := setupStorage(ctx, cfg)
	if err != nil {
		deps.Close()
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Publisher = setupPublisher(cfg, lgr)

	tokens := pkgAuth.NewSessionTokenService(pkgAuth.SessionTokenConfig{
		SecretKey:   cfg.Session.Secret,
		TokenIssuer: cfg.Session.Issuer,
	})
	deps.Sessions = session.NewManager(store, tokens, helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour))

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:   deps.Repos,
		Storage: storage,
		Extractor: extractor.NewCommandExtractor(extractor.CommandConfig{
			Command: cfg.Extractor.Command,
			Args:    cfg.ExtractorArgs(),
			WorkDir: cfg.Extractor.WorkDir,
			Timeout: helpers.ParseDuration(cfg.Extractor.Timeout, 30*time.Second),
		}),
		Scoring: scoring.NewClient(scoring.Config{
			BaseURL:        cfg.Scoring.BaseURL,
			ConnectTimeout: helpers.ParseDuration(cfg.Scoring.ConnectTimeout, 5*time.Second),
			RequestTimeout: helpers.ParseDuration(cfg.Scoring.RequestTimeout, 10*time.Second),
		}),
		Publisher: deps.Publisher,
		Resume: appServices.ResumeConfig{
			MaxBytes:       cfg.Storage.MaxResumeBytes,
			DeleteReplaced: cfg.Storage.DeleteReplaced,
		},
		Logger: logger.Component("services"),
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, cfg.Session.CookieName, logger.Component("auth"))

	svc := deps.Services
	authController := appControllers.NewAuthController(
		svc.AccountService,
		deps.Sessions,
		appControllers.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		lgr,
	)
	deps.Controllers = &appRoutes.Controllers{
		Auth:           authController,
		Profile:        appControllers.NewProfileController(svc.ProfileService, lgr),
		Internship:     appControllers.NewInternshipController(svc.CatalogService, lgr),
		Recommendation: appControllers.NewRecommendationController(svc.RecommendationService, lgr),
		Registration:   appControllers.NewRegistrationController(svc.RegistrationService, lgr),
		Page:           appControllers.NewPageController(authController, svc.AccountService, svc.ProfileService, svc.CatalogService, lgr),
		Health:         appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(logger.Component("http")),
		appMiddleware.SecurityHeaders(),
		appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	if !cfg.IsProduction() {
		appRoutes.SetupSwagger(router)
	}
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware,
		appMiddleware.NewRateLimiter(cfg.Server.LoginRatePerMinute, cfg.Server.LoginBurst))

	return router, nil
}
