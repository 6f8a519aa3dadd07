package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

// ProfileDTO is the shipping prefill returned to clients.
type ProfileDTO struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
}

// UpdateProfileInput carries the writable shipping fields.
type UpdateProfileInput struct {
	Email    string
	FullName string
	Mobile   string
	Address  string
}

// Service exposes shipping-profile reads and writes.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error)
}

type profileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, profile models.Profile) error
}

type userLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type service struct {
	profiles profileRepository
	users    userLoader
}

// NewService constructs a profiles service.
func NewService(profiles profileRepository, users userLoader) (Service, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profiles repository is required")
	}
	if users == nil {
		return nil, fmt.Errorf("user loader is required")
	}
	return &service{profiles: profiles, users: users}, nil
}

// Get returns the saved shipping details, or an empty prefill carrying the
// account email when the user has never checked out.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err == nil {
		return &ProfileDTO{
			Email:    profile.Email,
			FullName: profile.FullName,
			Mobile:   profile.Mobile,
			Address:  profile.Address,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return &ProfileDTO{Email: user.Email}, nil
}

// Update overwrites the shipping details.
func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error) {
	if err := s.profiles.Upsert(ctx, models.Profile{
		ID:       userID,
		Email:    input.Email,
		FullName: input.FullName,
		Mobile:   input.Mobile,
		Address:  input.Address,
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save profile")
	}
	return &ProfileDTO{
		Email:    input.Email,
		FullName: input.FullName,
		Mobile:   input.Mobile,
		Address:  input.Address,
	}, nil
}
