package service

import (
	"context"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// JobService orchestrates job-posting views over the backend API.
type JobService struct {
	api ports.JobsAPI
}

// NewJobService constructs a JobService.
func NewJobService(api ports.JobsAPI) *JobService {
	return &JobService{api: api}
}

// List returns all visible postings.
func (s *JobService) List(ctx context.Context, cred ports.Credential) ([]model.Job, error) {
	return s.api.List(ctx, cred)
}

// Query returns postings matching the filters.
func (s *JobService) Query(ctx context.Context, cred ports.Credential, f model.JobFilters) ([]model.Job, error) {
	return s.api.Query(ctx, cred, f)
}

// Get returns a single posting.
func (s *JobService) Get(ctx context.Context, cred ports.Credential, id string) (model.Job, error) {
	if id == "" {
		return model.Job{}, apperrors.Validation("job ID is required")
	}
	return s.api.Get(ctx, cred, id)
}

// ListByCompany returns the postings owned by one company.
func (s *JobService) ListByCompany(ctx context.Context, cred ports.Credential, companyID string) ([]model.Job, error) {
	if companyID == "" {
		return nil, apperrors.Validation("company ID is required")
	}
	return s.api.ListByCompany(ctx, cred, companyID)
}

// Create validates and submits a new posting.
func (s *JobService) Create(ctx context.Context, cred ports.Credential, job model.Job) (model.Job, error) {
	if job.Title == "" {
		return model.Job{}, apperrors.Validation("job title is required")
	}
	if job.CompanyID == "" {
		return model.Job{}, apperrors.Validation("company ID is required")
	}
	return s.api.Create(ctx, cred, job)
}

// Update replaces a posting.
func (s *JobService) Update(ctx context.Context, cred ports.Credential, id string, job model.Job) (model.Job, error) {
	if id == "" {
		return model.Job{}, apperrors.Validation("job ID is required")
	}
	return s.api.Update(ctx, cred, id, job)
}

// Delete removes a posting; a reason is mandatory for the audit trail.
func (s *JobService) Delete(ctx context.Context, cred ports.Credential, id string, req model.DeleteJobRequest) error {
	if id == "" {
		return apperrors.Validation("job ID is required")
	}
	if req.Reason == "" {
		return apperrors.Validation("a deletion reason is required")
	}
	return s.api.Delete(ctx, cred, id, req)
}
