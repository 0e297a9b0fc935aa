package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// TenantSummary is the tenant shape returned by auth endpoints.
type TenantSummary struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	Phone       string     `json:"phone"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromModel converts a tenant row into its API shape.
func FromModel(tenant *models.Tenant) TenantSummary {
	return TenantSummary{
		ID:          tenant.ID,
		DisplayName: tenant.DisplayName,
		Phone:       tenant.Phone,
		LastLoginAt: tenant.LastLoginAt,
		CreatedAt:   tenant.CreatedAt,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the minted token pair and tenant profile.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Tenant       TenantSummary `json:"tenant"`
}

// RefreshRequest rotates an access/refresh pair.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse carries the replacement token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
