package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
)

func TestJobsQueryForwardsFiltersAndCredential(t *testing.T) {
	var gotPath, gotQuery, gotToken string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		if cookie, err := r.Cookie("access_token"); err == nil {
			gotToken = cookie.Value
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.Job{{ID: "j-1", Title: "Backend Engineer"}})
	}))

	jobs, err := NewJobsClient(c).Query(context.Background(), "tok-1", model.JobFilters{
		Title:     "engineer",
		Location:  "Bangkok",
		MinSalary: 30000,
		Latest:    true,
		Sort:      "dateDesc",
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)

	assert.Equal(t, "/jobs/query", gotPath)
	assert.Contains(t, gotQuery, "title=engineer")
	assert.Contains(t, gotQuery, "location=Bangkok")
	assert.Contains(t, gotQuery, "minSalary=30000")
	assert.Contains(t, gotQuery, "latest=true")
	assert.Contains(t, gotQuery, "sort=dateDesc")
	assert.NotContains(t, gotQuery, "maxSalary")
	assert.Equal(t, "tok-1", gotToken)
}

func TestJobsGetNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such job"}`))
	}))

	_, err := NewJobsClient(c).Get(context.Background(), "tok-1", "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobsCreateSendsBody(t *testing.T) {
	var gotBody model.Job
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		gotBody.ID = "j-9"
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gotBody)
	}))

	created, err := NewJobsClient(c).Create(context.Background(), "tok-1", model.Job{Title: "Data Analyst", CompanyID: "c-3"})
	require.NoError(t, err)
	assert.Equal(t, "j-9", created.ID)
	assert.Equal(t, "Data Analyst", gotBody.Title)
	assert.Equal(t, "c-3", gotBody.CompanyID)
}

func TestJobsDeleteCarriesReason(t *testing.T) {
	var gotReason model.DeleteJobRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/jobs/j-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReason))
		w.WriteHeader(http.StatusNoContent)
	}))

	err := NewJobsClient(c).Delete(context.Background(), "tok-1", "j-1", model.DeleteJobRequest{Reason: "position filled"})
	require.NoError(t, err)
	assert.Equal(t, "position filled", gotReason.Reason)
}

func TestUnauthorizedMapping(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := NewJobsClient(c).List(context.Background(), "stale")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBannedEnvelopeMappingOnResourceCall(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"account_banned"}`))
	}))

	_, err := NewJobsClient(c).List(context.Background(), "tok")
	assert.True(t, apperrors.IsBanned(err))
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
