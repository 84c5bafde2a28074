package httpx

import (
	"log/slog"
	"net/http"

	"github.com/campushire/campushire-web/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Sessions     *service.SessionService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Users        *service.UserService
	Notes        *service.NoteService
	Files        *service.FileService

	AccessCookieName  string
	RefreshCookieName string
	CookieDomain      string
	SecureCookies     bool
	AdminLandingPath  string
	OAuthStartURL     string

	Logger *slog.Logger
}

// NewRouter builds the full handler chain: panic recovery, request IDs,
// request logging, then the session middleware in front of the page mux.
// The health endpoint bypasses the session middleware entirely.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(logger)
	if err != nil {
		return nil, err
	}

	pages := &PageHandlers{Renderer: renderer, Logger: logger, OAuthStartURL: services.OAuthStartURL}
	app := &AppHandlers{
		Jobs:         services.Jobs,
		Applications: services.Applications,
		Users:        services.Users,
		Files:        services.Files,
		Renderer:     renderer,
		Logger:       logger,
	}
	company := &CompanyHandlers{
		Jobs:         services.Jobs,
		Applications: services.Applications,
		Notes:        services.Notes,
		Files:        services.Files,
		Renderer:     renderer,
		Logger:       logger,
	}
	faculty := &FacultyHandlers{Jobs: services.Jobs, Users: services.Users, Renderer: renderer, Logger: logger}
	admin := &AdminHandlers{Users: services.Users, Jobs: services.Jobs, Renderer: renderer, Logger: logger}
	auth := &AuthHandlers{
		AccessCookieName:  services.AccessCookieName,
		RefreshCookieName: services.RefreshCookieName,
		CookieDomain:      services.CookieDomain,
		SecureCookies:     services.SecureCookies,
		Logger:            logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pages.Home)
	mux.HandleFunc("GET /login", pages.Login)
	mux.HandleFunc("GET /signup", pages.Signup)
	mux.HandleFunc("GET /signup/student", pages.SignupStudent)
	mux.HandleFunc("GET /signup/student/{step}", pages.SignupStudent)
	mux.HandleFunc("GET /signup/company", pages.SignupCompany)
	mux.HandleFunc("GET /signup/company/{step}", pages.SignupCompany)
	mux.HandleFunc("GET /callback", pages.Callback)
	mux.HandleFunc("GET /unverified", pages.Unverified)
	mux.HandleFunc("GET /banned", pages.Banned)

	mux.HandleFunc("GET /app/jobs", app.JobsPage)
	mux.HandleFunc("GET /app/jobs/{id}", app.JobPage)
	mux.HandleFunc("GET /app/applications", app.ApplicationsPage)
	mux.HandleFunc("GET /app/profile", app.ProfilePage)

	mux.HandleFunc("GET /company/dashboard", company.Dashboard)
	mux.HandleFunc("GET /company/jobs", company.JobsPage)
	mux.HandleFunc("GET /company/applications/{id}", company.ApplicationPage)

	mux.HandleFunc("GET /faculty/dashboard", faculty.Dashboard)

	mux.HandleFunc("GET /admin/dashboard", admin.Dashboard)
	mux.HandleFunc("GET /admin/users", admin.UsersPage)

	mux.HandleFunc("POST /api/logout", auth.Logout)
	mux.HandleFunc("GET /api/session", auth.Session)

	session := Session(SessionMiddlewareOptions{
		Sessions:          services.Sessions,
		Logger:            logger,
		AccessCookieName:  services.AccessCookieName,
		RefreshCookieName: services.RefreshCookieName,
		CookieDomain:      services.CookieDomain,
		SecureCookies:     services.SecureCookies,
		AdminLandingPath:  services.AdminLandingPath,
	})

	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", healthHandler)
	root.HandleFunc("HEAD /healthz", healthHandler)
	root.Handle("GET /static/", StaticHandler())
	root.Handle("/", session(mux))

	handler := RequestID()(root)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}
