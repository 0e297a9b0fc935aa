package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
)

// InventoryLog records an immutable quantity change for a product. Rows are
// append-only: NewQuantity = PreviousQuantity + QuantityChange, and replaying
// a product's rows in timestamp order reproduces its current quantity.
type InventoryLog struct {
	ID               uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID         uuid.UUID             `gorm:"column:tenant_id;type:uuid;not null;index:idx_inventory_logs_tenant"`
	ProductID        uuid.UUID             `gorm:"column:product_id;type:uuid;not null;index:idx_inventory_logs_product"`
	Action           enums.InventoryAction `gorm:"column:action;type:text;not null"`
	QuantityChange   int                   `gorm:"column:quantity_change;not null"`
	PreviousQuantity int                   `gorm:"column:previous_quantity;not null"`
	NewQuantity      int                   `gorm:"column:new_quantity;not null"`
	CreatedAt        time.Time             `gorm:"column:created_at;autoCreateTime"`
}
