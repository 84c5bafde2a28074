package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
)

// UsersClient implements ports.UsersAPI against the backend /users resource.
type UsersClient struct {
	c *Client
}

// NewUsersClient wraps a backend client with the users resource surface.
func NewUsersClient(c *Client) *UsersClient { return &UsersClient{c: c} }

// List fetches all accounts (admin views).
func (u *UsersClient) List(ctx context.Context, cred ports.Credential) ([]model.User, error) {
	var users []model.User
	err := u.c.doJSON(ctx, request{method: http.MethodGet, path: "/users/", cred: cred}, &users)
	return users, err
}

// Query fetches accounts matching the given filters.
func (u *UsersClient) Query(ctx context.Context, cred ports.Credential, f model.UserFilters) ([]model.User, error) {
	q := url.Values{}
	setIfPresent(q, "id", f.ID)
	setIfPresent(q, "role", f.Role)
	setIfPresent(q, "email", f.Email)
	if f.Verified != nil {
		q.Set("verified", strconv.FormatBool(*f.Verified))
	}

	var users []model.User
	err := u.c.doJSON(ctx, request{method: http.MethodGet, path: "/users/query", cred: cred, query: q}, &users)
	return users, err
}

// Get fetches a single account by ID.
func (u *UsersClient) Get(ctx context.Context, cred ports.Credential, id string) (model.User, error) {
	var user model.User
	err := u.c.doJSON(ctx, request{method: http.MethodGet, path: "/users/" + url.PathEscape(id), cred: cred}, &user)
	return user, err
}

// Profile fetches the account of the calling credential.
func (u *UsersClient) Profile(ctx context.Context, cred ports.Credential) (model.User, error) {
	var user model.User
	err := u.c.doJSON(ctx, request{method: http.MethodGet, path: "/users/profile", cred: cred}, &user)
	return user, err
}

// UpdateProfile updates the calling account's own profile.
func (u *UsersClient) UpdateProfile(ctx context.Context, cred ports.Credential, user model.User) (model.User, error) {
	var updated model.User
	err := u.c.doJSON(ctx, request{method: http.MethodPut, path: "/users/profile", cred: cred, body: user}, &updated)
	return updated, err
}

// Update replaces an account (admin operation).
func (u *UsersClient) Update(ctx context.Context, cred ports.Credential, id string, user model.User) (model.User, error) {
	var updated model.User
	err := u.c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   "/users/" + url.PathEscape(id),
		cred:   cred,
		body:   user,
	}, &updated)
	return updated, err
}

// Delete removes an account (admin operation).
func (u *UsersClient) Delete(ctx context.Context, cred ports.Credential, id string) error {
	return u.c.doJSON(ctx, request{method: http.MethodDelete, path: "/users/" + url.PathEscape(id), cred: cred}, nil)
}
