package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	TenantID uuid.UUID
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to clients. The tenant
// identifier in the token is the only tenancy signal the API trusts; every
// downstream query is scoped by it.
type AccessTokenClaims struct {
	TenantID uuid.UUID `json:"tenant_id"`
	jwt.RegisteredClaims
}
