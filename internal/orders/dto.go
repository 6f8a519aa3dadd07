package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/pkg/currency"
	"github.com/ragavibes/storefront-backend/pkg/db/models"
	"github.com/ragavibes/storefront-backend/pkg/types"
)

// OrderDTO is the transport shape of a placed order.
type OrderDTO struct {
	ID           uuid.UUID        `json:"id"`
	FullName     string           `json:"full_name"`
	Mobile       string           `json:"mobile"`
	Address      string           `json:"address"`
	Email        string           `json:"email"`
	TotalAmount  int64            `json:"total_amount"`
	TotalDisplay string           `json:"total_display"`
	Status       string           `json:"status"`
	Items        types.OrderItems `json:"items"`
	CreatedAt    time.Time        `json:"created_at"`
}

// CreateOrderDTO holds the data required to persist a new order.
type CreateOrderDTO struct {
	UserID      uuid.UUID
	FullName    string
	Mobile      string
	Address     string
	Email       string
	TotalAmount int64
	Items       types.OrderItems
}

// FromModel maps an order row to its transport shape.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	items := o.OrderItems
	if items == nil {
		items = types.OrderItems{}
	}
	return &OrderDTO{
		ID:           o.ID,
		FullName:     o.FullName,
		Mobile:       o.Mobile,
		Address:      o.Address,
		Email:        o.Email,
		TotalAmount:  o.TotalAmount,
		TotalDisplay: currency.Display(o.TotalAmount),
		Status:       o.Status,
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}

// FromModels maps a slice of order rows, preserving order.
func FromModels(rows []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (c CreateOrderDTO) toModel() *models.Order {
	return &models.Order{
		UserID:      c.UserID,
		FullName:    c.FullName,
		Mobile:      c.Mobile,
		Address:     c.Address,
		Email:       c.Email,
		TotalAmount: c.TotalAmount,
		Status:      models.OrderStatusPlaced,
		OrderItems:  c.Items,
	}
}
