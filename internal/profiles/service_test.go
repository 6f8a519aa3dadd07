package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

type stubProfileRepo struct {
	profile   *models.Profile
	getErr    error
	upsertErr error
	upserted  *models.Profile
}

func (s *stubProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.profile, s.getErr
}

func (s *stubProfileRepo) Upsert(ctx context.Context, profile models.Profile) error {
	s.upserted = &profile
	return s.upsertErr
}

type stubUserLoader struct {
	user *models.User
	err  error
}

func (s *stubUserLoader) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.user, s.err
}

func TestGetReturnsSavedProfile(t *testing.T) {
	repo := &stubProfileRepo{profile: &models.Profile{
		Email: "asha@example.com", FullName: "Asha Rao", Mobile: "9876543210", Address: "12 MG Road",
	}}
	svc, err := NewService(repo, &stubUserLoader{})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Equal(t, "12 MG Road", got.Address)
}

func TestGetFallsBackToUserEmail(t *testing.T) {
	repo := &stubProfileRepo{getErr: gorm.ErrRecordNotFound}
	users := &stubUserLoader{user: &models.User{Email: "asha@example.com"}}
	svc, err := NewService(repo, users)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.Empty(t, got.FullName)
	assert.Empty(t, got.Address)
}

func TestUpdateWrapsRepoError(t *testing.T) {
	repo := &stubProfileRepo{upsertErr: errors.New("boom")}
	svc, err := NewService(repo, &stubUserLoader{})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), uuid.New(), UpdateProfileInput{Email: "asha@example.com"})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeInternal, appErr.Code())
}

func TestUpdatePassesFieldsThrough(t *testing.T) {
	repo := &stubProfileRepo{}
	svc, err := NewService(repo, &stubUserLoader{})
	require.NoError(t, err)

	userID := uuid.New()
	got, err := svc.Update(context.Background(), userID, UpdateProfileInput{
		Email: "asha@example.com", FullName: "Asha Rao", Mobile: "9876543210", Address: "12 MG Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, userID, repo.upserted.ID)
	assert.Equal(t, "12 MG Road", repo.upserted.Address)
}
