package routes

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/services"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
)

const testPassword = "correct-horse"

type fakeAccountService struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	nextID   int64
	err      error
}

func newFakeAccountService(accounts ...*models.Account) *fakeAccountService {
	f := &fakeAccountService{accounts: make(map[int64]*models.Account)}
	for _, a := range accounts {
		f.accounts[a.ID] = a
		if a.ID > f.nextID {
			f.nextID = a.ID
		}
	}
	return f
}

func (f *fakeAccountService) Register(_ context.Context, fullName, email, password string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range f.accounts {
		if a.Email == email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	a := &models.Account{ID: f.nextID, FullName: fullName, Email: email, CreatedAt: time.Now()}
	f.accounts[a.ID] = a
	return a, nil
}

func (f *fakeAccountService) Authenticate(_ context.Context, email, password string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if email == "" || password == "" {
		return nil, apperrors.ErrValidationFailed
	}
	for _, a := range f.accounts {
		if a.Email == strings.ToLower(email) {
			if password != testPassword {
				return nil, apperrors.ErrInvalidCredentials
			}
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountService) GetByID(_ context.Context, id int64) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return a, nil
}

type fakeProfileService struct {
	profiles   map[int64]*models.Profile
	result     *services.SubmitResult
	err        error
	lastResume *multipart.FileHeader
	lastInput  *dto.ProfileInput
	submits    int
}

func newFakeProfileService() *fakeProfileService {
	return &fakeProfileService{profiles: make(map[int64]*models.Profile)}
}

func (f *fakeProfileService) Get(_ context.Context, accountID int64) (*models.Profile, error) {
	return f.profiles[accountID], nil
}

func (f *fakeProfileService) Upsert(_ context.Context, accountID int64, in *dto.ProfileInput) (*models.Profile, error) {
	p := &models.Profile{AccountID: accountID, College: in.College, Domain: in.Domain, CGPA: in.CGPA}
	f.profiles[accountID] = p
	return p, nil
}

func (f *fakeProfileService) Submit(ctx context.Context, accountID int64, in *dto.ProfileInput, resume *multipart.FileHeader) (*services.SubmitResult, error) {
	f.submits++
	f.lastInput = in
	f.lastResume = resume
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	p, _ := f.Upsert(ctx, accountID, in)
	return &services.SubmitResult{Profile: p, Message: services.MsgSubmissionSaved, MessageType: models.MessageTypeSuccess}, nil
}

type fakeCatalogService struct {
	internships []*models.Internship
}

func (f *fakeCatalogService) ListActive(context.Context) ([]*models.Internship, error) {
	var out []*models.Internship
	for _, i := range f.internships {
		if i.IsActive {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeCatalogService) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	for _, i := range f.internships {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, apperrors.ErrInternshipNotFound
}

type fakeRecommendationService struct {
	payload json.RawMessage
	health  *scoring.Health
	err     error
	calls   []int64
}

func (f *fakeRecommendationService) Recommend(_ context.Context, accountID int64) (json.RawMessage, error) {
	f.calls = append(f.calls, accountID)
	return f.payload, f.err
}

func (f *fakeRecommendationService) Health(context.Context) (*scoring.Health, error) {
	return f.health, f.err
}

type fakeRegistrationService struct {
	mu      sync.Mutex
	catalog *fakeCatalogService
	regs    []*models.Registration
}

func (f *fakeRegistrationService) Register(ctx context.Context, accountID, internshipID int64) (*models.Registration, error) {
	if internshipID <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTarget, "Invalid internship ID")
	}
	internship, err := f.catalog.GetByID(ctx, internshipID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidTarget, "Internship not found")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.regs {
		if r.AccountID == accountID && r.InternshipID == internshipID {
			return nil, apperrors.ErrAlreadyRegistered
		}
	}
	reg := &models.Registration{
		ID:              int64(len(f.regs) + 1),
		AccountID:       accountID,
		InternshipID:    internshipID,
		Status:          models.RegistrationStatusRegistered,
		CreatedAt:       time.Now(),
		InternshipTitle: internship.Title,
		CompanyName:     internship.CompanyName,
	}
	f.regs = append(f.regs, reg)
	return reg, nil
}

func (f *fakeRegistrationService) List(_ context.Context, accountID int64) ([]*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Registration
	for _, r := range f.regs {
		if r.AccountID == accountID {
			out = append(out, r)
		}
	}
	return out, nil
}
