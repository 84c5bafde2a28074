package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/service"
	"golang.org/x/sync/errgroup"
)

// AdminHandlers serves the admin area under /admin/.
type AdminHandlers struct {
	Users    *service.UserService
	Jobs     *service.JobService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

// Dashboard shows platform-wide account and posting totals.
func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())

	var (
		users []model.User
		jobs  []model.Job
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		users, err = h.Users.List(ctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = h.Jobs.List(ctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Admin dashboard", struct {
		Users []model.User
		Jobs  []model.Job
	}{users, jobs})
	_ = h.Renderer.Render(w, "admin_dashboard", data)
}

// UsersPage lists accounts with optional role/email/verified filters.
func (h *AdminHandlers) UsersPage(w http.ResponseWriter, r *http.Request) {
	cred := GetCredentialFromContext(r.Context())
	filters := userFiltersFromQuery(r)

	var (
		users []model.User
		err   error
	)
	if filters == (model.UserFilters{}) {
		users, err = h.Users.List(r.Context(), cred)
	} else {
		users, err = h.Users.Query(r.Context(), cred, filters)
	}
	if err != nil {
		RenderErrorPage(h.Renderer, w, r, err, h.Logger)
		return
	}

	data := NewPageData(r, "Users", struct {
		Users   []model.User
		Filters model.UserFilters
	}{users, filters})
	_ = h.Renderer.Render(w, "admin_users", data)
}

func userFiltersFromQuery(r *http.Request) model.UserFilters {
	q := r.URL.Query()
	f := model.UserFilters{
		Role:  q.Get("role"),
		Email: q.Get("email"),
	}
	if raw := q.Get("verified"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Verified = &v
		}
	}
	return f
}
