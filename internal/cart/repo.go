package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/currency"
	"github.com/ragavibes/storefront-backend/pkg/db/models"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertIncrement inserts the (user, product) row with quantity 1, or bumps
// the existing quantity by one. The single statement keeps concurrent adds
// from racing a read-then-write. Returns the resulting quantity.
func (r *Repository) UpsertIncrement(ctx context.Context, userID, productID uuid.UUID) (int, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return 0, gorm.ErrInvalidValue
	}

	var row struct {
		Quantity int
	}
	err := r.db.WithContext(ctx).
		Raw(`INSERT INTO cart_items (id, user_id, product_id, quantity)
VALUES (?, ?, ?, 1)
ON CONFLICT (user_id, product_id) DO UPDATE
  SET quantity = cart_items.quantity + 1,
      updated_at = CURRENT_TIMESTAMP
RETURNING quantity`, uuid.New(), userID, productID).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.Quantity, nil
}

// ListItems returns the user's cart rows joined with their products, oldest
// first so the cart renders in the order items were added.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]LineDTO, error) {
	var records []cartLineRecord
	err := r.db.WithContext(ctx).
		Table("cart_items ci").
		Select("ci.product_id, ci.quantity, ci.created_at AS added_at, p.name AS product_name, p.type AS product_type, p.image_url, p.price").
		Joins("JOIN products p ON p.id = ci.product_id").
		Where("ci.user_id = ?", userID).
		Order("ci.created_at ASC").
		Order("ci.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	lines := make([]LineDTO, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.toDTO())
	}
	return lines, nil
}

// RemoveItem deletes the row if present and reports whether anything matched.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Clear removes every cart row for the user. Checkout calls this inside its
// transaction so a placed order and a drained cart commit together.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).
		Error
}

type cartLineRecord struct {
	ProductID   uuid.UUID `gorm:"column:product_id"`
	ProductName string    `gorm:"column:product_name"`
	ProductType string    `gorm:"column:product_type"`
	ImageURL    string    `gorm:"column:image_url"`
	Price       int64     `gorm:"column:price"`
	Quantity    int       `gorm:"column:quantity"`
	AddedAt     time.Time `gorm:"column:added_at"`
}

func (r cartLineRecord) toDTO() LineDTO {
	subtotal := r.Price * int64(r.Quantity)
	return LineDTO{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		ProductType:     r.ProductType,
		ImageURL:        r.ImageURL,
		Price:           r.Price,
		Quantity:        r.Quantity,
		Subtotal:        subtotal,
		SubtotalDisplay: currency.Display(subtotal),
		AddedAt:         r.AddedAt,
	}
}
