package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/internal/cart"
	"github.com/ragavibes/storefront-backend/internal/orders"
	"github.com/ragavibes/storefront-backend/internal/profiles"
	"github.com/ragavibes/storefront-backend/pkg/config"
	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
	"github.com/ragavibes/storefront-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ShippingDetails is the buyer-entered destination for an order.
type ShippingDetails struct {
	FullName string
	Mobile   string
	Address  string
	Email    string
}

// Service executes order placement.
type Service interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, shipping ShippingDetails) (*orders.OrderDTO, error)
}

type service struct {
	tx  txRunner
	cfg config.CheckoutConfig
}

// NewService builds the checkout service.
func NewService(tx txRunner, cfg config.CheckoutConfig) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	return &service{tx: tx, cfg: cfg}, nil
}

// PlaceOrder snapshots the cart into an immutable order, refreshes the
// shipping profile, and drains the cart. All three writes share one
// transaction: either the whole placement lands or none of it does.
func (s *service) PlaceOrder(ctx context.Context, userID uuid.UUID, shipping ShippingDetails) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if err := shipping.validate(); err != nil {
		return nil, err
	}

	var placed *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := cart.NewRepository(tx)
		ordersRepo := orders.NewRepository(tx)
		profileRepo := profiles.NewRepository(tx)

		lines, err := cartRepo.ListItems(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
		}
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
		}
		if s.cfg.MaxLineItems > 0 && len(lines) > s.cfg.MaxLineItems {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("cart exceeds %d line items", s.cfg.MaxLineItems))
		}

		items := make(types.OrderItems, 0, len(lines))
		var total int64
		for _, line := range lines {
			items = append(items, types.OrderItem{
				ProductID:   line.ProductID,
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
				Price:       line.Price,
			})
			total += line.Price * int64(line.Quantity)
		}

		placed, err = ordersRepo.Create(ctx, orders.CreateOrderDTO{
			UserID:      userID,
			FullName:    shipping.FullName,
			Mobile:      shipping.Mobile,
			Address:     shipping.Address,
			Email:       shipping.Email,
			TotalAmount: total,
			Items:       items,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		if err := profileRepo.Upsert(ctx, models.Profile{
			ID:       userID,
			Email:    shipping.Email,
			FullName: shipping.FullName,
			Mobile:   shipping.Mobile,
			Address:  shipping.Address,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save shipping profile")
		}

		if err := cartRepo.Clear(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders.FromModel(placed), nil
}

func (d ShippingDetails) validate() error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(d.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(d.Mobile) == "" {
		missing = append(missing, "mobile")
	}
	if strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			"missing required shipping fields: "+strings.Join(missing, ", "))
	}
	return nil
}
