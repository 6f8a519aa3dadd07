package types

import "github.com/google/uuid"

// OrderItem is one frozen line of an order snapshot. Prices are copied at
// placement time so later catalog edits never change order history.
type OrderItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       int64     `json:"price"`
}

// OrderItems is the jsonb snapshot column stored on each order.
type OrderItems []OrderItem

// TotalAmount sums price times quantity across the snapshot.
func (items OrderItems) TotalAmount() int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
