package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/smartmatch/internal/app/repositories"
	"github.com/yigit/smartmatch/internal/pkg/events"
	"github.com/yigit/smartmatch/internal/pkg/extractor"
	"github.com/yigit/smartmatch/internal/pkg/filestorage"
)

// Dependencies are the collaborators shared by the services
type Dependencies struct {
	Repos     *repositories.Repositories
	Storage   filestorage.Storage
	Extractor extractor.Extractor
	Scoring   ScoringClient
	Publisher events.Publisher
	Resume    ResumeConfig
	Logger    zerolog.Logger
}

// Services holds every service the controllers use
type Services struct {
	AccountService        AccountService
	ProfileService        ProfileService
	ResumeService         ResumeService
	CatalogService        CatalogService
	RecommendationService RecommendationService
	RegistrationService   RegistrationService
}

// NewServices wires the services from their dependencies
func NewServices(deps Dependencies) *Services {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	resumeService := NewResumeService(deps.Storage, deps.Extractor, deps.Resume, deps.Logger)
	catalogService := NewCatalogService(deps.Repos.InternshipRepository, deps.Logger)

	return &Services{
		AccountService:        NewAccountService(deps.Repos.AccountRepository, publisher, deps.Logger),
		ProfileService:        NewProfileService(deps.Repos.ProfileRepository, resumeService, publisher, deps.Logger),
		ResumeService:         resumeService,
		CatalogService:        catalogService,
		RecommendationService: NewRecommendationService(deps.Repos.ProfileRepository, deps.Scoring, deps.Logger),
		RegistrationService:   NewRegistrationService(deps.Repos.RegistrationRepository, deps.Repos.InternshipRepository, publisher, deps.Logger),
	}
}
