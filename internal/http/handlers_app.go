package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/service"
	"golang.org/x/sync/errgroup"
)

// AppHandlers serves the job seeker area under /app/.
type AppHandlers struct {
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Users        *service.UserService
	Files        *service.FileService
	Renderer     *TemplateRenderer
	Logger       *slog.Logger
}

type jobsPageData struct {
	Jobs    []model.Job
	Filters model.JobFilters
}

// JobsPage lists open postings with optional filters. Open to every
// verified role, not just job seekers.
func (h *AppHandlers) JobsPage(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())
	filters := jobFiltersFromQuery(r)

	var (
		jobs []model.Job
		err  error
	)
	if filters == (model.JobFilters{}) {
		jobs, err = h.Jobs.List(r.Context(), cred)
	} else {
		jobs, err = h.Jobs.Query(r.Context(), cred, filters)
	}
	if err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Jobs", jobsPageData{Jobs: jobs, Filters: filters})
	_ = h.Renderer.Render(w, "jobs", data)
}

func jobFiltersFromQuery(r *http.Request) model.JobFilters {
	q := r.URL.Query()
	f := model.JobFilters{
		Title:           q.Get("title"),
		Location:        q.Get("location"),
		WorkType:        q.Get("workType"),
		WorkArrangement: q.Get("workArrangement"),
		PostOpenDate:    q.Get("postOpenDate"),
		Sort:            q.Get("sort"),
	}
	if v, err := strconv.Atoi(q.Get("minSalary")); err == nil {
		f.MinSalary = v
	}
	if v, err := strconv.Atoi(q.Get("maxSalary")); err == nil {
		f.MaxSalary = v
	}
	return f
}

// JobPage shows a single posting.
func (h *AppHandlers) JobPage(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())

	job, err := h.Jobs.Get(r.Context(), cred, r.PathValue("id"))
	if err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, job.Title, struct{ Job model.Job }{job})
	_ = h.Renderer.Render(w, "job_detail", data)
}

// ApplicationsPage lists the signed-in job seeker's applications.
func (h *AppHandlers) ApplicationsPage(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUserFromContext(r.Context())
	cred := GetCredentialFromContext(r.Context())

	apps, err := h.Applications.ForApplicant(r.Context(), cred, user.UserID)
	if err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "My applications", struct {
		Applications []model.JobApplication
	}{apps})
	_ = h.Renderer.Render(w, "applications", data)
}

// ProfilePage shows the signed-in account and its uploaded documents.
// The two backend calls are independent, so they run concurrently.
func (h *AppHandlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUserFromContext(r.Context())
	cred := GetCredentialFromContext(r.Context())

	var (
		account model.User
		files   []model.FileMetadata
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		account, err = h.Users.Profile(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		files, err = h.Files.ListByUser(ctx, cred, user.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Your profile", struct {
		Account model.User
		Files   []model.FileMetadata
	}{account, files})
	_ = h.Renderer.Render(w, "profile", data)
}
