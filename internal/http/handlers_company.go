package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/service"
	"golang.org/x/sync/errgroup"
)

// CompanyHandlers serves the employer area under /company/.
type CompanyHandlers struct {
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Notes        *service.NoteService
	Files        *service.FileService
	Renderer     *TemplateRenderer
	Logger       *slog.Logger
}

// Dashboard shows the company's postings and incoming applications.
// Both lists come from independent backend endpoints, fetched concurrently.
func (h *CompanyHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUserFromContext(r.Context())
	cred := GetCredentialFromContext(r.Context())

	var (
		jobs []model.Job
		apps []model.JobApplication
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		jobs, err = h.Jobs.ListByCompany(ctx, cred, user.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = h.Applications.ForCompany(ctx, cred, user.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Company dashboard", struct {
		Jobs         []model.Job
		Applications []model.JobApplication
	}{jobs, apps})
	_ = h.Renderer.Render(w, "company_dashboard", data)
}

// JobsPage lists the company's own postings.
func (h *CompanyHandlers) JobsPage(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUserFromContext(r.Context())
	cred := GetCredentialFromContext(r.Context())

	jobs, err := h.Jobs.ListByCompany(r.Context(), cred, user.UserID)
	if err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Your postings", struct{ Jobs []model.Job }{jobs})
	_ = h.Renderer.Render(w, "company_jobs", data)
}

// ApplicationPage shows one application with its review notes and the
// applicant's submitted documents. Three independent backend reads,
// fetched concurrently.
func (h *CompanyHandlers) ApplicationPage(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())
	id := r.PathValue("id")

	var (
		app   model.JobApplication
		notes []model.Note
		files model.ApplicantFiles
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		app, err = h.Applications.Get(ctx, cred, id)
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = h.Notes.ListByApplication(ctx, cred, id)
		return err
	})
	g.Go(func() error {
		var err error
		files, err = h.Files.ListByApplication(ctx, cred, id)
		return err
	})
	if err := g.Wait(); err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Application", struct {
		Application model.JobApplication
		Notes       []model.Note
		Files       model.ApplicantFiles
	}{app, notes, files})
	_ = h.Renderer.Render(w, "company_application", data)
}
