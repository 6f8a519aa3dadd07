package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

// Service exposes cart operations to the API layer.
type Service interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*AddItemResult, error)
	GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}

type cartRepository interface {
	UpsertIncrement(ctx context.Context, userID, productID uuid.UUID) (int, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]LineDTO, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	cart     cartRepository
	products productFinder
}

// NewService constructs a cart service with the provided dependencies.
func NewService(cart cartRepository, products productFinder) (Service, error) {
	if cart == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	return &service{cart: cart, products: products}, nil
}

// AddItem adds one unit of the product to the user's cart. Adding a product
// already in the cart bumps its quantity instead of creating a second row.
func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID) (*AddItemResult, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	quantity, err := s.cart.UpsertIncrement(ctx, userID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}

	return &AddItemResult{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Created:     quantity == 1,
	}, nil
}

// GetCart returns the user's cart with per-line subtotals and the running total.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	lines, err := s.cart.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	dto := buildCartDTO(lines)
	return &dto, nil
}

// RemoveItem drops the product from the cart regardless of quantity.
func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	removed, err := s.cart.RemoveItem(ctx, userID, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	if !removed {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}
