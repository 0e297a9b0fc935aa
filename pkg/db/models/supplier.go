package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a vendor contact owned by exactly one tenant.
type Supplier struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID      uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:idx_suppliers_tenant"`
	Name          string    `gorm:"column:name;not null"`
	ContactNumber string    `gorm:"column:contact_number;not null"`
	Email         *string   `gorm:"column:email"`
	Address       *string   `gorm:"column:address"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
