package service

import (
	"context"
	"time"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// NoteService orchestrates application notes over the backend API.
type NoteService struct {
	api ports.NotesAPI
	now func() time.Time
}

// NewNoteService constructs a NoteService.
func NewNoteService(api ports.NotesAPI) *NoteService {
	return &NoteService{api: api, now: time.Now}
}

// ListByApplication returns the notes attached to one application.
func (s *NoteService) ListByApplication(ctx context.Context, cred ports.Credential, applicationID string) ([]model.Note, error) {
	if applicationID == "" {
		return nil, apperrors.Validation("application ID is required")
	}
	return s.api.ListByApplication(ctx, cred, applicationID)
}

// Create attaches a note, stamping it when the caller did not.
func (s *NoteService) Create(ctx context.Context, cred ports.Credential, n model.Note) (model.Note, error) {
	if n.JobApplicationID == "" {
		return model.Note{}, apperrors.Validation("application ID is required")
	}
	if n.Content == "" {
		return model.Note{}, apperrors.Validation("note content is required")
	}
	if n.Timestamp == "" {
		n.Timestamp = s.now().UTC().Format(time.RFC3339)
	}
	return s.api.Create(ctx, cred, n)
}

// Update replaces a note's content.
func (s *NoteService) Update(ctx context.Context, cred ports.Credential, id string, n model.Note) error {
	if id == "" {
		return apperrors.Validation("note ID is required")
	}
	return s.api.Update(ctx, cred, id, n)
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, cred ports.Credential, id string) error {
	if id == "" {
		return apperrors.Validation("note ID is required")
	}
	return s.api.Delete(ctx, cred, id)
}
