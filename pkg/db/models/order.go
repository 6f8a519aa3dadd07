package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ragavibes/storefront-backend/pkg/types"
)

// OrderStatusPlaced is the only status the storefront produces today.
const OrderStatusPlaced = "placed"

// Order is an immutable purchase record. The items snapshot and total are
// frozen at placement time.
type Order struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID        `gorm:"column:user_id;type:uuid;not null;index"`
	FullName    string           `gorm:"column:full_name;not null"`
	Mobile      string           `gorm:"column:mobile;not null"`
	Address     string           `gorm:"column:address;not null"`
	Email       string           `gorm:"column:email;not null"`
	TotalAmount int64            `gorm:"column:total_amount;not null"`
	Status      string           `gorm:"column:status;not null;default:'placed'"`
	OrderItems  types.OrderItems `gorm:"column:order_items;type:jsonb;serializer:json"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
}
