package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/campushire/campushire-web/internal/domain/model"
	"github.com/campushire/campushire-web/internal/ports"
)

// NotesClient implements ports.NotesAPI against the backend /notes resource.
type NotesClient struct {
	c *Client
}

// NewNotesClient wraps a backend client with the notes resource surface.
func NewNotesClient(c *Client) *NotesClient { return &NotesClient{c: c} }

// ListByApplication fetches the notes attached to one application.
func (n *NotesClient) ListByApplication(ctx context.Context, cred ports.Credential, applicationID string) ([]model.Note, error) {
	q := url.Values{}
	setIfPresent(q, "jobApplicationID", applicationID)

	var notes []model.Note
	err := n.c.doJSON(ctx, request{method: http.MethodGet, path: "/notes/", cred: cred, query: q}, &notes)
	return notes, err
}

// Create attaches a new note to an application.
func (n *NotesClient) Create(ctx context.Context, cred ports.Credential, note model.Note) (model.Note, error) {
	var created model.Note
	err := n.c.doJSON(ctx, request{method: http.MethodPost, path: "/notes/", cred: cred, body: note}, &created)
	return created, err
}

// Update replaces a note's content.
func (n *NotesClient) Update(ctx context.Context, cred ports.Credential, id string, note model.Note) error {
	return n.c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   "/notes/" + url.PathEscape(id),
		cred:   cred,
		body:   note,
	}, nil)
}

// Delete removes a note.
func (n *NotesClient) Delete(ctx context.Context, cred ports.Credential, id string) error {
	return n.c.doJSON(ctx, request{method: http.MethodDelete, path: "/notes/" + url.PathEscape(id), cred: cred}, nil)
}
