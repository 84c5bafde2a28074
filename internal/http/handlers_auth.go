package httpx

import (
	"log/slog"
	"net/http"
)

// AuthHandlers serves the session-lifecycle endpoints.
type AuthHandlers struct {
	AccessCookieName  string
	RefreshCookieName string
	CookieDomain      string
	SecureCookies     bool
	Logger            *slog.Logger
}

// Logout deletes both session cookies and sends the browser to the login
// page. The backend's refresh token is revoked lazily; deleting the
// cookie is enough to end this tier's session.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{h.AccessCookieName, h.RefreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   h.CookieDomain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
	if h.Logger != nil {
		h.Logger.Info("logout", slog.String("request_id", GetRequestIDFromContext(r.Context())))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Session returns the resolved user as JSON for client-side scripts.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r.Context())
	if !ok || !user.IsAuthenticated {
		WriteJSON(w, http.StatusOK, map[string]any{"isAuthenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"userID":          user.UserID,
		"email":           user.Email,
		"name":            user.Name,
		"avatarURL":       user.AvatarURL,
		"role":            string(user.Role),
		"verified":        user.Verified,
	})
}
