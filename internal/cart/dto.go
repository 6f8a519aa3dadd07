package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/pkg/currency"
)

// LineDTO is one cart row joined with its product.
type LineDTO struct {
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductType     string    `json:"product_type"`
	ImageURL        string    `json:"image_url"`
	Price           int64     `json:"price"`
	Quantity        int       `json:"quantity"`
	Subtotal        int64     `json:"subtotal"`
	SubtotalDisplay string    `json:"subtotal_display"`
	AddedAt         time.Time `json:"added_at"`
}

// CartDTO is the full cart view returned to clients.
type CartDTO struct {
	Items        []LineDTO `json:"items"`
	TotalAmount  int64     `json:"total_amount"`
	TotalDisplay string    `json:"total_display"`
}

// AddItemResult reports the post-upsert quantity and whether the row is new.
// Created distinguishes "added to cart" from "quantity increased" messaging.
type AddItemResult struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Created     bool      `json:"created"`
}

func buildCartDTO(lines []LineDTO) CartDTO {
	var total int64
	for _, line := range lines {
		total += line.Subtotal
	}
	return CartDTO{
		Items:        lines,
		TotalAmount:  total,
		TotalDisplay: currency.Display(total),
	}
}
