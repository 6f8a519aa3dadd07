package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile caches the shipping details last used at checkout. The primary key
// equals the owning user's id.
type Profile struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;not null;default:''"`
	FullName  string    `gorm:"column:full_name;not null;default:''"`
	Mobile    string    `gorm:"column:mobile;not null;default:''"`
	Address   string    `gorm:"column:address;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
