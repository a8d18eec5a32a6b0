package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/smartmatch/internal/app/models"
)

// IAccountRepository defines account persistence
type IAccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

// IProfileRepository defines profile persistence. GetByAccountID returns (nil, nil) when no profile exists.
type IProfileRepository interface {
	GetByAccountID(ctx context.Context, accountID int64) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

// IInternshipRepository defines catalog persistence
type IInternshipRepository interface {
	ListActive(ctx context.Context) ([]*models.Internship, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	Create(ctx context.Context, internship *models.Internship) error
	Count(ctx context.Context) (int64, error)
}

// IRegistrationRepository defines registration persistence
type IRegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	ListByAccount(ctx context.Context, accountID int64) ([]*models.Registration, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository      *AccountRepository
	ProfileRepository      *ProfileRepository
	InternshipRepository   *InternshipRepository
	RegistrationRepository *RegistrationRepository
	SessionRepository      *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:      NewAccountRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		InternshipRepository:   NewInternshipRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		SessionRepository:      NewSessionRepository(db),
	}
}
