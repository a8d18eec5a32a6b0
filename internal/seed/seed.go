package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/smartmatch/internal/app/models"
)

// CatalogStore is the part of the internship repository the seeder needs
type CatalogStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, i *appModels.Internship) error
}

// DefaultInternships returns the starter catalog relative to now
func DefaultInternships(now time.Time) []*appModels.Internship {
	deadline := func(days int) *time.Time {
		d := now.AddDate(0, 0, days).Truncate(24 * time.Hour)
		return &d
	}

	return []*appModels.Internship{
		{Title: "Full Stack Developer Intern", CompanyName: "TechNova Labs", Description: "Build React and Go features for a B2B dashboard.",
			RequiredDomain: "Full Stack Development", MinCGPA: 7.0, RequiredExperience: 0.5, MinCertifications: 1,
			Location: "Bengaluru", DurationMonths: 6, Stipend: 20000, ApplicationDeadline: deadline(45), IsActive: true},
		{Title: "Frontend Engineering Intern", CompanyName: "PixelCraft", Description: "Ship accessible UI components and own a design system page.",
			RequiredDomain: "Full Stack Development", MinCGPA: 6.5, MinCertifications: 0,
			Location: "Remote", DurationMonths: 3, Stipend: 12000, ApplicationDeadline: deadline(30), IsActive: true},
		{Title: "Data Science Intern", CompanyName: "Acme Analytics", Description: "Model churn and build feature pipelines in Python.",
			RequiredDomain: "Data Science & ML", MinCGPA: 7.5, RequiredExperience: 0, MinCertifications: 1,
			Location: "Hyderabad", DurationMonths: 6, Stipend: 25000, ApplicationDeadline: deadline(60), IsActive: true},
		{Title: "Machine Learning Research Intern", CompanyName: "DeepBridge AI", Description: "Evaluate ranking models on production traffic.",
			RequiredDomain: "Data Science & ML", MinCGPA: 8.5, RequiredExperience: 1, MinCertifications: 2,
			Location: "Pune", DurationMonths: 6, Stipend: 35000, ApplicationDeadline: deadline(40), IsActive: true},
		{Title: "Security Analyst Intern", CompanyName: "ShieldOps", Description: "Triage alerts and write detection rules.",
			RequiredDomain: "Cyber Security", MinCGPA: 7.0, RequiredExperience: 0, MinCertifications: 1,
			Location: "Chennai", DurationMonths: 4, Stipend: 18000, ApplicationDeadline: deadline(50), IsActive: true},
		{Title: "Cloud Engineering Intern", CompanyName: "Nimbus Systems", Description: "Automate infrastructure with Terraform on AWS.",
			RequiredDomain: "Cloud Computing", MinCGPA: 7.0, RequiredExperience: 0.5, MinCertifications: 1,
			Location: "Gurugram", DurationMonths: 6, Stipend: 22000, ApplicationDeadline: deadline(35), IsActive: true},
		{Title: "DevOps Intern", CompanyName: "PipelineWorks", Description: "Maintain CI pipelines and Kubernetes deployments.",
			RequiredDomain: "DevOps", MinCGPA: 6.5, RequiredExperience: 0, MinCertifications: 0,
			Location: "Remote", DurationMonths: 3, Stipend: 15000, ApplicationDeadline: deadline(25), IsActive: true},
		{Title: "Product Design Intern", CompanyName: "Studio Lumen", Description: "Run user interviews and prototype flows in Figma.",
			RequiredDomain: "UI/UX Design", MinCGPA: 6.0, RequiredExperience: 0, MinCertifications: 0,
			Location: "Mumbai", DurationMonths: 3, Stipend: 10000, ApplicationDeadline: deadline(20), IsActive: true},
		{Title: "Backend Intern (Closed)", CompanyName: "LegacySoft", Description: "Position filled.",
			RequiredDomain: "Full Stack Development", MinCGPA: 7.0,
			Location: "Noida", DurationMonths: 6, Stipend: 15000, ApplicationDeadline: deadline(-10), IsActive: false},
	}
}

// SeedCatalog inserts the starter catalog when the internships table is empty
func SeedCatalog(ctx context.Context, store CatalogStore, lgr zerolog.Logger) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		lgr.Debug().Int64("internships", n).Msg("Catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default internship catalog...")
	var finalErr error
	created := 0
	for _, i := range DefaultInternships(time.Now().UTC()) {
		if err := store.Create(ctx, i); err != nil {
			lgr.Error().Err(err).Str("title", i.Title).Msg("Error creating internship")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default catalog seeded")
	return finalErr
}
