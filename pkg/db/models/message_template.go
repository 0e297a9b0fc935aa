package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageTemplate is a reorder message body with placeholders. The three
// templates seeded at provisioning carry IsDefault=true and are immutable.
type MessageTemplate struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID  uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index:idx_message_templates_tenant"`
	Name      string    `gorm:"column:name;not null"`
	Body      string    `gorm:"column:body;not null"`
	IsDefault bool      `gorm:"column:is_default;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
