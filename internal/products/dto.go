package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/pkg/currency"
	"github.com/ragavibes/storefront-backend/pkg/db/models"
)

// ProductDTO is the catalog listing returned to clients.
type ProductDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Specs        string    `json:"specs"`
	Price        int64     `json:"price"`
	PriceDisplay string    `json:"price_display"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModel maps a product row to its transport shape.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		Specs:        p.Specs,
		Price:        p.Price,
		PriceDisplay: currency.Display(p.Price),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
	}
}

// FromModels maps a slice of product rows, preserving order.
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
