package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
)

// JobsClient implements ports.JobsAPI against the backend /jobs resource.
type JobsClient struct {
	c *Client
}

// NewJobsClient wraps a backend client with the jobs resource surface.
func NewJobsClient(c *Client) *JobsClient { return &JobsClient{c: c} }

// List fetches all visible job postings.
func (j *JobsClient) List(ctx context.Context, cred ports.Credential) ([]model.Job, error) {
	var jobs []model.Job
	err := j.c.doJSON(ctx, request{method: http.MethodGet, path: "/jobs/", cred: cred}, &jobs)
	return jobs, err
}

// Query fetches job postings matching the given filters.
func (j *JobsClient) Query(ctx context.Context, cred ports.Credential, f model.JobFilters) ([]model.Job, error) {
	var jobs []model.Job
	err := j.c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/jobs/query",
		cred:   cred,
		query:  jobFilterValues(f),
	}, &jobs)
	return jobs, err
}

// Get fetches a single job posting by ID.
func (j *JobsClient) Get(ctx context.Context, cred ports.Credential, id string) (model.Job, error) {
	var job model.Job
	err := j.c.doJSON(ctx, request{method: http.MethodGet, path: "/jobs/" + url.PathEscape(id), cred: cred}, &job)
	return job, err
}

// ListByCompany fetches the postings owned by a company account.
func (j *JobsClient) ListByCompany(ctx context.Context, cred ports.Credential, companyID string) ([]model.Job, error) {
	var jobs []model.Job
	err := j.c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/jobs/company/" + url.PathEscape(companyID),
		cred:   cred,
	}, &jobs)
	return jobs, err
}

// Create submits a new job posting.
func (j *JobsClient) Create(ctx context.Context, cred ports.Credential, job model.Job) (model.Job, error) {
	var created model.Job
	err := j.c.doJSON(ctx, request{method: http.MethodPost, path: "/jobs/", cred: cred, body: job}, &created)
	return created, err
}

// Update replaces a job posting.
func (j *JobsClient) Update(ctx context.Context, cred ports.Credential, id string, job model.Job) (model.Job, error) {
	var updated model.Job
	err := j.c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   "/jobs/" + url.PathEscape(id),
		cred:   cred,
		body:   job,
	}, &updated)
	return updated, err
}

// Delete removes a job posting, recording the operator-supplied reason.
func (j *JobsClient) Delete(ctx context.Context, cred ports.Credential, id string, req model.DeleteJobRequest) error {
	return j.c.doJSON(ctx, request{
		method: http.MethodDelete,
		path:   "/jobs/" + url.PathEscape(id),
		cred:   cred,
		body:   req,
	}, nil)
}

func jobFilterValues(f model.JobFilters) url.Values {
	q := url.Values{}
	setIfPresent(q, "id", f.ID)
	setIfPresent(q, "title", f.Title)
	setIfPresent(q, "companyID", f.CompanyID)
	setIfPresent(q, "location", f.Location)
	setIfPresent(q, "workType", f.WorkType)
	setIfPresent(q, "workArrangement", f.WorkArrangement)
	setIfPresent(q, "postOpenDate", f.PostOpenDate)
	setIfPresent(q, "sort", f.Sort)
	if f.MinSalary > 0 {
		q.Set("minSalary", strconv.Itoa(f.MinSalary))
	}
	if f.MaxSalary > 0 {
		q.Set("maxSalary", strconv.Itoa(f.MaxSalary))
	}
	if f.Latest {
		q.Set("latest", "true")
	}
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
