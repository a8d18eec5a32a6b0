package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/smartmatch/internal/app/controllers"
	"github.com/yigit/smartmatch/internal/app/models"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"github.com/yigit/smartmatch/internal/app/views"
	"github.com/yigit/smartmatch/internal/middleware"
	"github.com/yigit/smartmatch/internal/pkg/apperrors"
	"github.com/yigit/smartmatch/internal/pkg/auth"
	"github.com/yigit/smartmatch/internal/pkg/scoring"
	"github.com/yigit/smartmatch/internal/pkg/session"
)

const cookieName = "smartmatch_session"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type testApp struct {
	router   *gin.Engine
	sessions *session.Manager
	accounts *fakeAccountService
	profiles *fakeProfileService
	catalog  *fakeCatalogService
	recs     *fakeRecommendationService
	regs     *fakeRegistrationService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tokens := auth.NewSessionTokenService(auth.SessionTokenConfig{SecretKey: "test-secret", TokenIssuer: "smartmatch"})
	app := &testApp{
		sessions: session.NewManager(session.NewMemoryStore(), tokens, time.Hour),
		accounts: newFakeAccountService(&models.Account{ID: 1, FullName: "Ada Lovelace", Email: "ada@example.com"}),
		profiles: newFakeProfileService(),
		catalog: &fakeCatalogService{internships: []*models.Internship{
			{ID: 1, Title: "Data Science Intern", CompanyName: "Acme Analytics", RequiredDomain: "Data Science & ML", IsActive: true},
			{ID: 2, Title: "DevOps Intern", CompanyName: "PipelineWorks", RequiredDomain: "DevOps", IsActive: true},
			{ID: 3, Title: "Closed Role", CompanyName: "LegacySoft", IsActive: false},
		}},
		recs: &fakeRecommendationService{},
	}
	app.regs = &fakeRegistrationService{catalog: app.catalog}

	lgr := zerolog.Nop()
	authController := controllers.NewAuthController(app.accounts, app.sessions, controllers.CookieConfig{Name: cookieName}, lgr)
	ctrl := &Controllers{
		Auth:           authController,
		Profile:        controllers.NewProfileController(app.profiles, lgr),
		Internship:     controllers.NewInternshipController(app.catalog, lgr),
		Recommendation: controllers.NewRecommendationController(app.recs, lgr),
		Registration:   controllers.NewRegistrationController(app.regs, lgr),
		Page:           controllers.NewPageController(authController, app.accounts, app.profiles, app.catalog, lgr),
		Health:         controllers.NewHealthController(stubPinger{}),
	}

	app.router = gin.New()
	tmpl, err := views.Templates()
	require.NoError(t, err)
	app.router.SetHTMLTemplate(tmpl)
	SetupRouter(app.router, ctrl, middleware.NewAuthMiddleware(app.sessions, cookieName, lgr), middleware.NewRateLimiter(60, 20))
	return app
}

func (a *testApp) token(t *testing.T, accountID int64) string {
	t.Helper()
	_, token, err := a.sessions.Create(context.Background(), accountID, "Ada Lovelace")
	require.NoError(t, err)
	return token
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func formRequest(path string, values url.Values, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return req
}

func cookieFrom(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAPIRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.do(jsonRequest(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		FullName: "Grace Hopper", Email: "grace@example.com", Password: testPassword,
	}, ""))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		FullName: "Grace Again", Email: "grace@example.com", Password: testPassword,
	}, ""))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "grace@example.com", Password: "wrong-password"}, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "grace@example.com", Password: testPassword}, ""))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cookieFrom(w, cookieName))

	var resp struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/auth/me", nil, resp.Data.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "grace@example.com")

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/auth/logout", nil, resp.Data.Token))
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/auth/me", nil, resp.Data.Token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	w := app.do(jsonRequest(http.MethodPost, "/api/v1/auth/register", map[string]string{"email": "not-an-email"}, ""))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeValidationFailed))
}

func TestProtectedAPIRequiresSession(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/recommendations", "/api/v1/registrations"} {
		w := app.do(jsonRequest(http.MethodGet, path, nil, ""))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestInternshipsAPI(t *testing.T) {
	app := newTestApp(t)

	w := app.do(jsonRequest(http.MethodGet, "/api/v1/internships", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.InternshipListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
	assert.Nil(t, list.Pagination)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/internships?page=2&size=1", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Internships, 1)
	assert.Equal(t, "DevOps Intern", list.Internships[0].Title)
	require.NotNil(t, list.Pagination)
	assert.Equal(t, 2, list.Pagination.TotalPages)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/internships?page=92233720368547760&size=100", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)
	list = dto.InternshipListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Internships)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/internships/2", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PipelineWorks")

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/internships/99", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/internships/abc", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileSubmitAPI(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"college": "IIT Madras", "degree": "B.Tech", "grad_year": "3rd Year",
		"cgpa": "8.4", "domain": "Data Science & ML", "certifications": "2",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.MessageTypeSuccess, resp.MessageType)
	require.NotNil(t, app.profiles.lastResume)
	assert.Equal(t, "cv.pdf", app.profiles.lastResume.Filename)
	require.NotNil(t, app.profiles.lastInput.CGPA)
	assert.Equal(t, 8.4, *app.profiles.lastInput.CGPA)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/profile", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IIT Madras")
}

func TestProfileSubmitAPIMissingFields(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	req := formRequest("/api/v1/profile", url.Values{"college": {"X"}}, "")
	req.Header.Set("Authorization", "Bearer "+token)
	w := app.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, app.profiles.submits)
}

func TestRecommendationsAPI(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	app.recs.payload = json.RawMessage(`{"success":true,"count":1,"recommendations":[{"internship_id":1,"total_score":87.5}]}`)
	w := app.do(jsonRequest(http.MethodGet, "/api/v1/recommendations", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(app.recs.payload), w.Body.String())
	assert.Equal(t, []int64{1}, app.recs.calls)

	tests := []struct {
		name   string
		err    error
		status int
		label  string
	}{
		{"no profile", apperrors.ErrProfileNotFound, http.StatusUnprocessableEntity, "Profile not completed"},
		{"incomplete", apperrors.ErrIncompleteProfile, http.StatusUnprocessableEntity, "Incomplete profile data"},
		{"unreachable", apperrors.NewCustomError(apperrors.ErrServiceUnavailable, "down").
			WithDetails(map[string]interface{}{"technicalDetails": "connection refused"}), http.StatusServiceUnavailable, "Cannot connect to AI recommendation service"},
		{"upstream error", &apperrors.ServiceError{StatusCode: 500, Body: "boom"}, http.StatusBadGateway, "AI service error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.recs.err = tt.err
			w := app.do(jsonRequest(http.MethodGet, "/api/v1/recommendations", nil, token))
			assert.Equal(t, tt.status, w.Code)

			var body dto.RecommendationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.label, body.Error)
		})
	}
}

func TestScoringHealthAPI(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	app.recs.health = &scoring.Health{Status: "healthy", InternshipsLoaded: 12}
	w := app.do(jsonRequest(http.MethodGet, "/api/v1/recommendations/health", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"internshipsLoaded":12`)
}

func TestRegistrationAPI(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	w := app.do(jsonRequest(http.MethodPost, "/api/v1/registrations", dto.RegisterInternshipRequest{InternshipID: 1}, token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully registered for Data Science Intern at Acme Analytics")

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/registrations", dto.RegisterInternshipRequest{InternshipID: 1}, token))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/registrations", dto.RegisterInternshipRequest{InternshipID: 404}, token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Internship not found")

	w = app.do(jsonRequest(http.MethodPost, "/api/v1/registrations", map[string]string{"internshipId": "x"}, token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(jsonRequest(http.MethodGet, "/api/v1/registrations", nil, token))
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.RegistrationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w := app.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "connected")
}

func TestPagesRedirectAnonymousVisitors(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/dashboard", "/apply", "/profile"} {
		w := app.do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
	}

	w := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndLoginPages(t *testing.T) {
	app := newTestApp(t)

	w := app.do(formRequest("/signup", url.Values{
		"fullname": {"Grace Hopper"}, "email": {"grace@example.com"}, "password": {testPassword},
	}, ""))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?signup=success", w.Header().Get("Location"))

	w = app.do(httptest.NewRequest(http.MethodGet, "/login?signup=success", nil))
	assert.Contains(t, w.Body.String(), "Account created! Please log in.")

	w = app.do(formRequest("/signup", url.Values{
		"fullname": {"Grace Hopper"}, "email": {"grace@example.com"}, "password": {testPassword},
	}, ""))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists. Try logging in.")

	w = app.do(formRequest("/login", url.Values{"email": {"nobody@example.com"}, "password": {testPassword}}, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No account found with that email!")

	w = app.do(formRequest("/login", url.Values{"email": {"grace@example.com"}, "password": {"nope-nope"}}, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password!")

	w = app.do(formRequest("/login", url.Values{"email": {"grace@example.com"}, "password": {testPassword}}, ""))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	sessionCookie := cookieFrom(w, cookieName)
	require.NotNil(t, sessionCookie)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie)
	w = app.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grace Hopper")

	w = app.do(formRequest("/logout", url.Values{}, sessionCookie.Value))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie)
	w = app.do(req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestApplyPageRedirectsWithFlash(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	w := app.do(formRequest("/apply", url.Values{"college": {"IIT Madras"}}, token))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/apply", w.Header().Get("Location"))
	flash := cookieFrom(w, "smartmatch_flash")
	require.NotNil(t, flash)
	assert.Equal(t, 0, app.profiles.submits)

	req := httptest.NewRequest(http.MethodGet, "/apply", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	req.AddCookie(flash)
	w = app.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all required fields.")

	w = app.do(formRequest("/apply", url.Values{
		"college": {"IIT Madras"}, "degree": {"B.Tech"}, "grad_year": {"3rd Year"},
		"cgpa": {"8.4"}, "domain": {"DevOps"},
	}, token))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 1, app.profiles.submits)
	flash = cookieFrom(w, "smartmatch_flash")
	require.NotNil(t, flash)
	value, err := url.QueryUnescape(flash.Value)
	require.NoError(t, err)
	assert.Equal(t, "success|Your details and resume data have been saved successfully!", value)
}

func TestHomeShowsCatalogWhenSignedIn(t *testing.T) {
	app := newTestApp(t)
	token := app.token(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data Science Intern")
	assert.NotContains(t, w.Body.String(), "Closed Role")
}

func TestStaticAssets(t *testing.T) {
	app := newTestApp(t)
	w := app.do(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
