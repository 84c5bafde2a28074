package service

import (
	"context"

	"github.com/campushire/campushire-web/internal/domain/model"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// UserService orchestrates account views over the backend API.
type UserService struct {
	api ports.UsersAPI
}

// NewUserService constructs a UserService.
func NewUserService(api ports.UsersAPI) *UserService {
	return &UserService{api: api}
}

// List returns all accounts (admin views).
func (s *UserService) List(ctx context.Context, cred ports.Credential) ([]model.User, error) {
	return s.api.List(ctx, cred)
}

// Query returns accounts matching the filters.
func (s *UserService) Query(ctx context.Context, cred ports.Credential, f model.UserFilters) ([]model.User, error) {
	return s.api.Query(ctx, cred, f)
}

// Get returns a single account.
func (s *UserService) Get(ctx context.Context, cred ports.Credential, id string) (model.User, error) {
	if id == "" {
		return model.User{}, apperrors.Validation("user ID is required")
	}
	return s.api.Get(ctx, cred, id)
}

// Profile returns the calling account.
func (s *UserService) Profile(ctx context.Context, cred ports.Credential) (model.User, error) {
	return s.api.Profile(ctx, cred)
}

// UpdateProfile updates the calling account's own record.
func (s *UserService) UpdateProfile(ctx context.Context, cred ports.Credential, u model.User) (model.User, error) {
	return s.api.UpdateProfile(ctx, cred, u)
}

// Update replaces an account (admin operation).
func (s *UserService) Update(ctx context.Context, cred ports.Credential, id string, u model.User) (model.User, error) {
	if id == "" {
		return model.User{}, apperrors.Validation("user ID is required")
	}
	return s.api.Update(ctx, cred, id, u)
}

// Delete removes an account (admin operation).
func (s *UserService) Delete(ctx context.Context, cred ports.Credential, id string) error {
	if id == "" {
		return apperrors.Validation("user ID is required")
	}
	return s.api.Delete(ctx, cred, id)
}
