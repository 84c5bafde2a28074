package httpx

import (
	"net/http"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
)

// PageData is the envelope every page template receives.
type PageData struct {
	Title string
	User  domainauth.User
	Data  any
}

// NewPageData builds the template envelope from the request context so
// every page can render the signed-in header state.
func NewPageData(r *http.Request, title string, data any) PageData {
	user, _ := GetUserFromContext(r.Context())
	return PageData{Title: title, User: user, Data: data}
}
