package ports

// Package ports defines interfaces (hexagonal ports) for the backend API
// surface this tier consumes. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	"github.com/campushire/campushire-web/internal/domain/model"
)

// TokenDecoder decodes a backend-issued access token into claims without
// verifying its signature. Decode failures mean "no session", never a panic.
type TokenDecoder interface {
	Decode(raw string) (domainauth.Claims, error)
}

// TokenRefresher exchanges a refresh token for a freshly minted access
// token at the backend. A ban reported by the backend surfaces as an
// error matching apperrors.IsBanned.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Credential is the caller's access token, forwarded to the backend as a
// cookie on authenticated resource calls.
type Credential string

// JobsAPI is the job-posting surface of the backend.
type JobsAPI interface {
	List(ctx context.Context, cred Credential) ([]model.Job, error)
	Query(ctx context.Context, cred Credential, f model.JobFilters) ([]model.Job, error)
	Get(ctx context.Context, cred Credential, id string) (model.Job, error)
	ListByCompany(ctx context.Context, cred Credential, companyID string) ([]model.Job, error)
	Create(ctx context.Context, cred Credential, job model.Job) (model.Job, error)
	Update(ctx context.Context, cred Credential, id string, job model.Job) (model.Job, error)
	Delete(ctx context.Context, cred Credential, id string, req model.DeleteJobRequest) error
}

// ApplicationsAPI is the job-application surface of the backend.
type ApplicationsAPI interface {
	Query(ctx context.Context, cred Credential, f model.ApplicationFilters) ([]model.JobApplication, error)
	Get(ctx context.Context, cred Credential, id string) (model.JobApplication, error)
	Create(ctx context.Context, cred Credential, app model.JobApplication) (model.JobApplication, error)
	Update(ctx context.Context, cred Credential, id string, app model.JobApplication) (model.JobApplication, error)
	Delete(ctx context.Context, cred Credential, id string) error
}

// UsersAPI is the account surface of the backend.
type UsersAPI interface {
	List(ctx context.Context, cred Credential) ([]model.User, error)
	Query(ctx context.Context, cred Credential, f model.UserFilters) ([]model.User, error)
	Get(ctx context.Context, cred Credential, id string) (model.User, error)
	Profile(ctx context.Context, cred Credential) (model.User, error)
	UpdateProfile(ctx context.Context, cred Credential, u model.User) (model.User, error)
	Update(ctx context.Context, cred Credential, id string, u model.User) (model.User, error)
	Delete(ctx context.Context, cred Credential, id string) error
}

// NotesAPI is the application-note surface of the backend.
type NotesAPI interface {
	ListByApplication(ctx context.Context, cred Credential, applicationID string) ([]model.Note, error)
	Create(ctx context.Context, cred Credential, n model.Note) (model.Note, error)
	Update(ctx context.Context, cred Credential, id string, n model.Note) error
	Delete(ctx context.Context, cred Credential, id string) error
}

// FilesAPI is the document-metadata surface of the backend.
type FilesAPI interface {
	ListByUser(ctx context.Context, cred Credential, userID string) ([]model.FileMetadata, error)
	ListByApplication(ctx context.Context, cred Credential, applicationID string) (model.ApplicantFiles, error)
	Delete(ctx context.Context, cred Credential, id string) error
}
