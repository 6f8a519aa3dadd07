package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is one catalog listing. Rows are read-only from the API and
// maintained out-of-band (seed data, admin tooling).
type Product struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Type      string    `gorm:"column:type;not null;index"`
	Specs     string    `gorm:"column:specs;not null;default:''"`
	Price     int64     `gorm:"column:price;not null"`
	ImageURL  string    `gorm:"column:image_url;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
