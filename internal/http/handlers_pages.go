package httpx

import (
	"log/slog"
	"net/http"
)

// PageHandlers serves the public, mostly-static pages.
type PageHandlers struct {
	Renderer *TemplateRenderer
	Logger   *slog.Logger

	// OAuthStartURL is the backend endpoint that begins the OAuth flow.
	// The backend sets the session cookies and bounces back to /callback.
	OAuthStartURL string
}

func (h *PageHandlers) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	if err := h.Renderer.Render(w, name, NewPageData(r, title, data)); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Home serves the landing page.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "home", "Home", nil)
}

// Login serves the sign-in page. Authenticated users never reach this
// handler; the session middleware redirects them away first.
func (h *PageHandlers) Login(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login", "Sign in", struct{ OAuthStartURL string }{h.OAuthStartURL})
}

// Signup serves the account-type chooser.
func (h *PageHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "signup", "Sign up", nil)
}

// SignupStudent serves one step of the student signup flow.
func (h *PageHandlers) SignupStudent(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "signup_student", "Student signup", struct{ Step string }{signupStep(r)})
}

// SignupCompany serves one step of the company signup flow.
func (h *PageHandlers) SignupCompany(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "signup_company", "Company signup", struct{ Step string }{signupStep(r)})
}

// signupStep extracts the step path segment, defaulting to "1".
func signupStep(r *http.Request) string {
	if step := r.PathValue("step"); step != "" {
		return step
	}
	return "1"
}

// Callback serves the OAuth return page. The backend has already set the
// cookies by the time the browser lands here.
func (h *PageHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "callback", "Signing in", nil)
}

// Unverified serves the please-verify notice. The display name travels in
// the query string because the viewer may have no readable session.
func (h *PageHandlers) Unverified(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.renderPage(w, r, "unverified", "Verify your email", struct{ Name string }{name})
}

// Banned serves the account-suspended notice.
func (h *PageHandlers) Banned(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "banned", "Account suspended", nil)
}
