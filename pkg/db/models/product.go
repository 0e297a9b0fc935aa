package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a tenant-owned catalog entry. Quantity is never written
// directly; every change flows through the inventory ledger so the audit
// trail stays complete.
type Product struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID     uuid.UUID           `gorm:"column:tenant_id;type:uuid;not null;index:idx_products_tenant"`
	Name         string              `gorm:"column:name;not null"`
	SupplierID   *uuid.UUID          `gorm:"column:supplier_id;type:uuid"`
	Quantity     int                 `gorm:"column:quantity;not null;default:0"`
	MinThreshold int                 `gorm:"column:min_threshold;not null;default:10"`
	UnitPrice    decimal.NullDecimal `gorm:"column:unit_price;type:numeric(12,2)"`
	Category     *string             `gorm:"column:category"`
	Description  *string             `gorm:"column:description"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
