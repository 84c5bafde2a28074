package service

import (
	"context"
	"testing"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The thin services validate inputs before touching the backend; with a
// nil port any call that passes validation would panic, so these tests
// also prove the backend is never reached on bad input.

func TestJobServiceValidation(t *testing.T) {
	svc := NewJobService(nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ListByCompany(ctx, "", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, "", model.Job{CompanyID: "c1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err), "missing title")

	_, err = svc.Create(ctx, "", model.Job{Title: "Engineer"})
	assert.True(t, apperrors.IsValidation(err), "missing company ID")

	err = svc.Delete(ctx, "", "j1", model.DeleteJobRequest{})
	assert.True(t, apperrors.IsValidation(err), "missing deletion reason")
}

func TestApplicationServiceValidation(t *testing.T) {
	svc := NewApplicationService(nil)
	ctx := context.Background()

	_, err := svc.ForApplicant(ctx, "", "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Submit(ctx, "", model.JobApplication{ApplicantID: "a1"})
	assert.True(t, apperrors.IsValidation(err), "missing job ID")

	_, err = svc.UpdateStatus(ctx, "", "id1", "")
	assert.True(t, apperrors.IsValidation(err), "missing status")

	err = svc.Withdraw(ctx, "", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestNoteServiceStampsTimestamp(t *testing.T) {
	api := &captureNotesAPI{}
	svc := NewNoteService(api)

	_, err := svc.Create(context.Background(), "", model.Note{
		JobApplicationID: "app1",
		Content:          "strong candidate",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, api.created.Timestamp, "timestamp stamped when absent")

	_, err = svc.Create(context.Background(), "", model.Note{JobApplicationID: "app1"})
	assert.True(t, apperrors.IsValidation(err), "missing content")
}

type captureNotesAPI struct {
	created model.Note
}

func (c *captureNotesAPI) ListByApplication(_ context.Context, _ ports.Credential, _ string) ([]model.Note, error) {
	return nil, nil
}

func (c *captureNotesAPI) Create(_ context.Context, _ ports.Credential, n model.Note) (model.Note, error) {
	c.created = n
	return n, nil
}

func (c *captureNotesAPI) Update(_ context.Context, _ ports.Credential, _ string, _ model.Note) error {
	return nil
}

func (c *captureNotesAPI) Delete(_ context.Context, _ ports.Credential, _ string) error {
	return nil
}
