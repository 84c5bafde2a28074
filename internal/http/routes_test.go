package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
	"github.com/campushire/campushire-web/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJobsAPI serves a fixed posting list and records the credential used.
type fakeJobsAPI struct {
	jobs     []model.Job
	lastCred ports.Credential
}

func (f *fakeJobsAPI) List(_ context.Context, cred ports.Credential) ([]model.Job, error) {
	f.lastCred = cred
	return f.jobs, nil
}

func (f *fakeJobsAPI) Query(_ context.Context, cred ports.Credential, _ model.JobFilters) ([]model.Job, error) {
	f.lastCred = cred
	return f.jobs, nil
}

func (f *fakeJobsAPI) Get(_ context.Context, _ ports.Credential, _ string) (model.Job, error) {
	return model.Job{}, nil
}

func (f *fakeJobsAPI) ListByCompany(_ context.Context, _ ports.Credential, _ string) ([]model.Job, error) {
	return f.jobs, nil
}

func (f *fakeJobsAPI) Create(_ context.Context, _ ports.Credential, j model.Job) (model.Job, error) {
	return j, nil
}

func (f *fakeJobsAPI) Update(_ context.Context, _ ports.Credential, _ string, j model.Job) (model.Job, error) {
	return j, nil
}

func (f *fakeJobsAPI) Delete(_ context.Context, _ ports.Credential, _ string, _ model.DeleteJobRequest) error {
	return nil
}

type fakeApplicationsAPI struct {
	apps []model.JobApplication
}

func (f *fakeApplicationsAPI) Query(_ context.Context, _ ports.Credential, _ model.ApplicationFilters) ([]model.JobApplication, error) {
	return f.apps, nil
}

func (f *fakeApplicationsAPI) Get(_ context.Context, _ ports.Credential, _ string) (model.JobApplication, error) {
	return model.JobApplication{}, nil
}

func (f *fakeApplicationsAPI) Create(_ context.Context, _ ports.Credential, a model.JobApplication) (model.JobApplication, error) {
	return a, nil
}

func (f *fakeApplicationsAPI) Update(_ context.Context, _ ports.Credential, _ string, a model.JobApplication) (model.JobApplication, error) {
	return a, nil
}

func (f *fakeApplicationsAPI) Delete(_ context.Context, _ ports.Credential, _ string) error {
	return nil
}

type fakeUsersAPI struct {
	users []model.User
}

func (f *fakeUsersAPI) List(_ context.Context, _ ports.Credential) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeUsersAPI) Query(_ context.Context, _ ports.Credential, _ model.UserFilters) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeUsersAPI) Get(_ context.Context, _ ports.Credential, _ string) (model.User, error) {
	return model.User{}, nil
}

func (f *fakeUsersAPI) Profile(_ context.Context, _ ports.Credential) (model.User, error) {
	if len(f.users) > 0 {
		return f.users[0], nil
	}
	return model.User{}, nil
}

func (f *fakeUsersAPI) UpdateProfile(_ context.Context, _ ports.Credential, u model.User) (model.User, error) {
	return u, nil
}

func (f *fakeUsersAPI) Update(_ context.Context, _ ports.Credential, _ string, u model.User) (model.User, error) {
	return u, nil
}

func (f *fakeUsersAPI) Delete(_ context.Context, _ ports.Credential, _ string) error {
	return nil
}

type fakeNotesAPI struct{}

func (fakeNotesAPI) ListByApplication(_ context.Context, _ ports.Credential, _ string) ([]model.Note, error) {
	return nil, nil
}
func (fakeNotesAPI) Create(_ context.Context, _ ports.Credential, n model.Note) (model.Note, error) {
	return n, nil
}
func (fakeNotesAPI) Update(_ context.Context, _ ports.Credential, _ string, _ model.Note) error {
	return nil
}
func (fakeNotesAPI) Delete(_ context.Context, _ ports.Credential, _ string) error { return nil }

type fakeFilesAPI struct{}

func (fakeFilesAPI) ListByUser(_ context.Context, _ ports.Credential, _ string) ([]model.FileMetadata, error) {
	return nil, nil
}
func (fakeFilesAPI) ListByApplication(_ context.Context, _ ports.Credential, _ string) (model.ApplicantFiles, error) {
	return model.ApplicantFiles{}, nil
}
func (fakeFilesAPI) Delete(_ context.Context, _ ports.Credential, _ string) error { return nil }

func newTestRouter(t *testing.T, decoder *stubDecoder, jobsAPI *fakeJobsAPI, usersAPI *fakeUsersAPI) http.Handler {
	t.Helper()

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Decoder:   decoder,
		Refresher: &stubRefresher{},
	})

	handler, err := NewRouter(RouterServices{
		Sessions:          sessions,
		Jobs:              service.NewJobService(jobsAPI),
		Applications:      service.NewApplicationService(&fakeApplicationsAPI{}),
		Users:             service.NewUserService(usersAPI),
		Notes:             service.NewNoteService(fakeNotesAPI{}),
		Files:             service.NewFileService(fakeFilesAPI{}),
		AccessCookieName:  "access_token",
		RefreshCookieName: "refresh_token",
		AdminLandingPath:  "/admin/dashboard",
		OAuthStartURL:     "http://localhost:8080/auth/google",
	})
	require.NoError(t, err)
	return handler
}

func TestHealthzBypassesSession(t *testing.T) {
	h := newTestRouter(t, &stubDecoder{}, &fakeJobsAPI{}, &fakeUsersAPI{})

	w := doRequest(h, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestHomePageRendersForAnonymous(t *testing.T) {
	h := newTestRouter(t, &stubDecoder{}, &fakeJobsAPI{}, &fakeUsersAPI{})

	w := doRequest(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CampusHire")
	assert.Contains(t, w.Body.String(), "Sign in")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestJobsPageRendersForVerifiedUser(t *testing.T) {
	decoder := &stubDecoder{claims: map[string]domainauth.Claims{
		"tok": {UserID: "u1", Name: "Ada", Role: "jobSeeker", Verified: true, Exp: futureExp()},
	}}
	jobsAPI := &fakeJobsAPI{jobs: []model.Job{{Title: "Backend Engineer", Location: "Berlin"}}}
	h := newTestRouter(t, decoder, jobsAPI, &fakeUsersAPI{})

	w := doRequest(h, "/app/jobs", accessCookie("tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Engineer")
	assert.Equal(t, ports.Credential("tok"), jobsAPI.lastCred, "access token forwarded to backend")
}

func TestJobsPageRedirectsAnonymous(t *testing.T) {
	h := newTestRouter(t, &stubDecoder{}, &fakeJobsAPI{}, &fakeUsersAPI{})

	w := doRequest(h, "/app/jobs")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?returnUrl=%2Fapp%2Fjobs", w.Header().Get("Location"))
}

func TestAdminUsersPage(t *testing.T) {
	decoder := &stubDecoder{claims: map[string]domainauth.Claims{
		"tok": {UserID: "a1", Role: "admin", Verified: true, Exp: futureExp()},
	}}
	usersAPI := &fakeUsersAPI{users: []model.User{{UserID: "u2", Name: "Grace", Email: "grace@example.edu", Role: "jobSeeker", Verified: true}}}
	h := newTestRouter(t, decoder, &fakeJobsAPI{}, usersAPI)

	w := doRequest(h, "/admin/users", accessCookie("tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "grace@example.edu")
}

func TestLogoutClearsCookies(t *testing.T) {
	decoder := &stubDecoder{claims: map[string]domainauth.Claims{
		"tok": {UserID: "u1", Role: "jobSeeker", Verified: true, Exp: futureExp()},
	}}
	h := newTestRouter(t, decoder, &fakeJobsAPI{}, &fakeUsersAPI{})

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(accessCookie("tok"))
	req.AddCookie(refreshCookie("rt"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assertCookieCleared(t, w, "access_token")
	assertCookieCleared(t, w, "refresh_token")
}

func TestSessionEndpointReportsIdentity(t *testing.T) {
	decoder := &stubDecoder{claims: map[string]domainauth.Claims{
		"tok": {UserID: "u1", Email: "ada@example.edu", Name: "Ada", Role: "company", Verified: true, Exp: futureExp()},
	}}
	h := newTestRouter(t, decoder, &fakeJobsAPI{}, &fakeUsersAPI{})

	w := doRequest(h, "/api/session", accessCookie("tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAuthenticated":true`)
	assert.Contains(t, w.Body.String(), `"role":"company"`)
}
