package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/service"
	"golang.org/x/sync/errgroup"
)

// FacultyHandlers serves the faculty area under /faculty/.
type FacultyHandlers struct {
	Jobs     *service.JobService
	Users    *service.UserService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

// Dashboard shows current postings alongside the registered student body.
func (h *FacultyHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())

	var (
		jobs     []model.Job
		students []model.User
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		jobs, err = h.Jobs.Query(ctx, cred, model.JobFilters{Latest: true, Sort: "dateDesc"})
		return err
	})
	g.Go(func() error {
		var err error
		students, err = h.Users.Query(ctx, cred, model.UserFilters{Role: "jobSeeker"})
		return err
	})
	if err := g.Wait(); err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Faculty dashboard", struct {
		Jobs     []model.Job
		Students []model.User
	}{jobs, students})
	_ = h.Renderer.Render(w, "faculty_dashboard", data)
}
