package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/extractor"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
)

// ── Mock AccountRepository ──

type mockAccountRepo struct {
	accounts map[int64]*models.Account
	nextID   int64
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[int64]*models.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *models.Account) error {
	for _, a := range m.accounts {
		if a.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	account.ID = m.nextID
	account.CreatedAt = time.Now()
	stored := *account
	m.accounts[account.ID] = &stored
	return nil
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			found := *a
			return &found, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (m *mockAccountRepo) GetByID(_ context.Context, id int64) (*models.Account, error) {
	if a, ok := m.accounts[id]; ok {
		found := *a
		return &found, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles  map[int64]*models.Profile
	upserts   int
	upsertErr error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[int64]*models.Profile)}
}

func (m *mockProfileRepo) GetByAccountID(_ context.Context, accountID int64) (*models.Profile, error) {
	if p, ok := m.profiles[accountID]; ok {
		found := *p
		return &found, nil
	}
	return nil, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, profile *models.Profile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts++
	now := time.Now()
	if existing, ok := m.profiles[profile.AccountID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	stored := *profile
	m.profiles[profile.AccountID] = &stored
	return nil
}

// ── Mock InternshipRepository ──

type mockInternshipRepo struct {
	internships map[int64]*models.Internship
}

func newMockInternshipRepo(internships ...*models.Internship) *mockInternshipRepo {
	m := &mockInternshipRepo{internships: make(map[int64]*models.Internship)}
	for _, i := range internships {
		m.internships[i.ID] = i
	}
	return m
}

func (m *mockInternshipRepo) ListActive(_ context.Context) ([]*models.Internship, error) {
	result := []*models.Internship{}
	for _, i := range m.internships {
		if i.IsActive {
			result = append(result, i)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result, nil
}

func (m *mockInternshipRepo) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	if i, ok := m.internships[id]; ok {
		return i, nil
	}
	return nil, apperrors.ErrInternshipNotFound
}

func (m *mockInternshipRepo) Create(_ context.Context, internship *models.Internship) error {
	internship.ID = int64(len(m.internships) + 1)
	m.internships[internship.ID] = internship
	return nil
}

func (m *mockInternshipRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.internships)), nil
}

// ── Mock RegistrationRepository ──

// mockRegistrationRepo enforces the (account, internship) uniqueness the way the table constraint does
type mockRegistrationRepo struct {
	mu     sync.Mutex
	rows   []*models.Registration
	titles map[int64][2]string
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{titles: make(map[int64][2]string)}
}

func (m *mockRegistrationRepo) Create(_ context.Context, reg *models.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.AccountID == reg.AccountID && r.InternshipID == reg.InternshipID {
			return apperrors.ErrAlreadyRegistered
		}
	}
	reg.ID = int64(len(m.rows) + 1)
	reg.CreatedAt = time.Now().Add(time.Duration(reg.ID) * time.Millisecond)
	stored := *reg
	m.rows = append(m.rows, &stored)
	return nil
}

func (m *mockRegistrationRepo) ListByAccount(_ context.Context, accountID int64) ([]*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := []*models.Registration{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].AccountID == accountID {
			r := *m.rows[i]
			r.InternshipTitle = m.titles[r.InternshipID][0]
			r.CompanyName = m.titles[r.InternshipID][1]
			result = append(result, &r)
		}
	}
	return result, nil
}

// ── Collaborator fakes ──

type fakeExtractor struct {
	result *extractor.Result
	err    error
	paths  []string
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (*extractor.Result, error) {
	f.paths = append(f.paths, path)
	return f.result, f.err
}

type fakeScoring struct {
	payload  json.RawMessage
	err      error
	requests []scoring.Request
	health   *scoring.Health
}

func (f *fakeScoring) Recommend(_ context.Context, req scoring.Request) (json.RawMessage, error) {
	f.requests = append(f.requests, req)
	return f.payload, f.err
}

func (f *fakeScoring) Health(_ context.Context) (*scoring.Health, error) {
	if f.health == nil {
		return nil, f.err
	}
	return f.health, nil
}

type publishedEvent struct {
	key     string
	payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{key: key, payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// ── Upload helpers ──

// minimalPDF builds a one-page document with a correct cross-reference table
func minimalPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func uploadedFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["resume"][0]
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
