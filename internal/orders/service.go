package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

// Service exposes read access to a user's order history. Orders are written
// by checkout only; history never mutates them.
type Service interface {
	History(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	Detail(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error)
}

type orderRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
}

type service struct {
	orders orderRepository
}

// NewService constructs an order history service.
func NewService(orders orderRepository) (Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	return &service{orders: orders}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	rows, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return FromModels(rows), nil
}

func (s *service) Detail(ctx context.Context, orderID, userID uuid.UUID) (*OrderDTO, error) {
	order, err := s.orders.FindByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return FromModel(order), nil
}
