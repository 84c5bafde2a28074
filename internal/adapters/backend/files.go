package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
)

// FilesClient implements ports.FilesAPI against the backend /files resource.
type FilesClient struct {
	c *Client
}

// NewFilesClient wraps a backend client with the files resource surface.
func NewFilesClient(c *Client) *FilesClient { return &FilesClient{c: c} }

// filesEnvelope matches the backend's list response shape.
type filesEnvelope struct {
	Files []model.FileMetadata `json:"files"`
}

// ListByUser fetches the documents uploaded by a user.
func (f *FilesClient) ListByUser(ctx context.Context, cred ports.Credential, userID string) ([]model.FileMetadata, error) {
	var env filesEnvelope
	err := f.c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/files/user/" + url.PathEscape(userID),
		cred:   cred,
	}, &env)
	return env.Files, err
}

// ListByApplication fetches the documents attached to an application.
func (f *FilesClient) ListByApplication(ctx context.Context, cred ports.Credential, applicationID string) (model.ApplicantFiles, error) {
	var files model.ApplicantFiles
	err := f.c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/files/application/" + url.PathEscape(applicationID),
		cred:   cred,
	}, &files)
	return files, err
}

// Delete removes a stored document.
func (f *FilesClient) Delete(ctx context.Context, cred ports.Credential, id string) error {
	return f.c.doJSON(ctx, request{method: http.MethodDelete, path: "/files/" + url.PathEscape(id), cred: cred}, nil)
}
