package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents one registered account and the owner of an isolated
// inventory ledger. The phone number doubles as the login handle.
type Tenant struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName    string     `gorm:"column:display_name;not null"`
	Phone          string     `gorm:"column:phone;type:text;not null;uniqueIndex:idx_tenants_phone"`
	CredentialHash string     `gorm:"column:credential_hash;not null"`
	LastLoginAt    *time.Time `gorm:"column:last_login_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
