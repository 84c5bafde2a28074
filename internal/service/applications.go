package service

import (
	"context"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// ApplicationService orchestrates job-application views over the backend API.
type ApplicationService struct {
	api ports.ApplicationsAPI
}

// NewApplicationService constructs an ApplicationService.
func NewApplicationService(api ports.ApplicationsAPI) *ApplicationService {
	return &ApplicationService{api: api}
}

// ForApplicant returns the applications submitted by one job seeker.
func (s *ApplicationService) ForApplicant(ctx context.Context, cred ports.Credential, applicantID string) ([]model.JobApplication, error) {
	if applicantID == "" {
		return nil, apperrors.Validation("applicant ID is required")
	}
	return s.api.Query(ctx, cred, model.ApplicationFilters{ApplicantID: applicantID})
}

// ForCompany returns the applications received by one company.
func (s *ApplicationService) ForCompany(ctx context.Context, cred ports.Credential, companyID string) ([]model.JobApplication, error) {
	if companyID == "" {
		return nil, apperrors.Validation("company ID is required")
	}
	return s.api.Query(ctx, cred, model.ApplicationFilters{CompanyID: companyID})
}

// ForJob returns the applications submitted against one posting.
func (s *ApplicationService) ForJob(ctx context.Context, cred ports.Credential, jobID string) ([]model.JobApplication, error) {
	if jobID == "" {
		return nil, apperrors.Validation("job ID is required")
	}
	return s.api.Query(ctx, cred, model.ApplicationFilters{JobID: jobID})
}

// Get returns a single application.
func (s *ApplicationService) Get(ctx context.Context, cred ports.Credential, id string) (model.JobApplication, error) {
	if id == "" {
		return model.JobApplication{}, apperrors.Validation("application ID is required")
	}
	return s.api.Get(ctx, cred, id)
}

// Submit files a new application.
func (s *ApplicationService) Submit(ctx context.Context, cred ports.Credential, app model.JobApplication) (model.JobApplication, error) {
	if app.JobID == "" {
		return model.JobApplication{}, apperrors.Validation("job ID is required")
	}
	if app.ApplicantID == "" {
		return model.JobApplication{}, apperrors.Validation("applicant ID is required")
	}
	return s.api.Create(ctx, cred, app)
}

// UpdateStatus transitions an application's status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, cred ports.Credential, id, status string) (model.JobApplication, error) {
	if id == "" {
		return model.JobApplication{}, apperrors.Validation("application ID is required")
	}
	if status == "" {
		return model.JobApplication{}, apperrors.Validation("status is required")
	}
	app, err := s.api.Get(ctx, cred, id)
	if err != nil {
		return model.JobApplication{}, err
	}
	app.Status = status
	return s.api.Update(ctx, cred, id, app)
}

// Withdraw removes an application.
func (s *ApplicationService) Withdraw(ctx context.Context, cred ports.Credential, id string) error {
	if id == "" {
		return apperrors.Validation("application ID is required")
	}
	return s.api.Delete(ctx, cred, id)
}
