package service

import (
	"context"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// FileService orchestrates document metadata over the backend API.
type FileService struct {
	api ports.FilesAPI
}

// NewFileService constructs a FileService.
func NewFileService(api ports.FilesAPI) *FileService {
	return &FileService{api: api}
}

// ListByUser returns the documents uploaded by one user.
func (s *FileService) ListByUser(ctx context.Context, cred ports.Credential, userID string) ([]model.FileMetadata, error) {
	if userID == "" {
		return nil, apperrors.Validation("user ID is required")
	}
	return s.api.ListByUser(ctx, cred, userID)
}

// ListByApplication returns the documents attached to one application.
func (s *FileService) ListByApplication(ctx context.Context, cred ports.Credential, applicationID string) (model.ApplicantFiles, error) {
	if applicationID == "" {
		return model.ApplicantFiles{}, apperrors.Validation("application ID is required")
	}
	return s.api.ListByApplication(ctx, cred, applicationID)
}

// Delete removes a stored document.
func (s *FileService) Delete(ctx context.Context, cred ports.Credential, id string) error {
	if id == "" {
		return apperrors.Validation("file ID is required")
	}
	return s.api.Delete(ctx, cred, id)
}
