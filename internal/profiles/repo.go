package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
)

// Repository encapsulates shipping-profile persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the profile keyed by the user id.
func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the shipping details, replacing any previous snapshot for the user.
func (r *Repository) Upsert(ctx context.Context, profile models.Profile) error {
	if profile.ID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Exec(`INSERT INTO profiles (id, email, full_name, mobile, address)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  mobile = EXCLUDED.mobile,
  address = EXCLUDED.address,
  updated_at = CURRENT_TIMESTAMP`,
			profile.ID, profile.Email, profile.FullName, profile.Mobile, profile.Address).
		Error
}
