package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
)

// ApplicationsClient implements ports.ApplicationsAPI against /apply.
type ApplicationsClient struct {
	c *Client
}

// NewApplicationsClient wraps a backend client with the applications resource surface.
func NewApplicationsClient(c *Client) *ApplicationsClient { return &ApplicationsClient{c: c} }

// Query fetches applications matching the given filters.
func (a *ApplicationsClient) Query(ctx context.Context, cred ports.Credential, f model.ApplicationFilters) ([]model.JobApplication, error) {
	q := url.Values{}
	setIfPresent(q, "applicantID", f.ApplicantID)
	setIfPresent(q, "jobID", f.JobID)
	setIfPresent(q, "companyID", f.CompanyID)
	setIfPresent(q, "status", f.Status)

	var apps []model.JobApplication
	err := a.c.doJSON(ctx, request{method: http.MethodGet, path: "/apply/query", cred: cred, query: q}, &apps)
	return apps, err
}

// Get fetches a single application by ID.
func (a *ApplicationsClient) Get(ctx context.Context, cred ports.Credential, id string) (model.JobApplication, error) {
	var app model.JobApplication
	err := a.c.doJSON(ctx, request{method: http.MethodGet, path: "/apply/" + url.PathEscape(id), cred: cred}, &app)
	return app, err
}

// Create submits a new application.
func (a *ApplicationsClient) Create(ctx context.Context, cred ports.Credential, app model.JobApplication) (model.JobApplication, error) {
	var created model.JobApplication
	err := a.c.doJSON(ctx, request{method: http.MethodPost, path: "/apply/", cred: cred, body: app}, &created)
	return created, err
}

// Update replaces an application (typically a status transition).
func (a *ApplicationsClient) Update(ctx context.Context, cred ports.Credential, id string, app model.JobApplication) (model.JobApplication, error) {
	var updated model.JobApplication
	err := a.c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   "/apply/" + url.PathEscape(id),
		cred:   cred,
		body:   app,
	}, &updated)
	return updated, err
}

// Delete withdraws an application.
func (a *ApplicationsClient) Delete(ctx context.Context, cred ports.Credential, id string) error {
	return a.c.doJSON(ctx, request{method: http.MethodDelete, path: "/apply/" + url.PathEscape(id), cred: cred}, nil)
}
