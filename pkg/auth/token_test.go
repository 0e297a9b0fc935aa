package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ravikiranj/stocktrail-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "stocktrail-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	tenantID := uuid.New()
	signed, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{TenantID: tenantID})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(testJWTConfig(), signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.TenantID != tenantID {
		t.Fatalf("tenant mismatch: %s", claims.TenantID)
	}
	if claims.ID == "" {
		t.Fatal("jti should be set")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signed, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{TenantID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	bad := testJWTConfig()
	bad.Secret = "other-secret"
	if _, err := ParseAccessToken(bad, signed); err == nil {
		t.Fatal("token signed with another secret must fail")
	}
}

func TestParseAllowExpired(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{TenantID: uuid.New(), JTI: "jti-1"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expired token should fail strict parse")
	}

	claims, err := ParseAccessTokenAllowExpired(cfg, signed)
	if err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	if claims.ID != "jti-1" {
		t.Fatalf("jti mismatch: %s", claims.ID)
	}
}

func TestMintRequiresTenant(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{}); err == nil {
		t.Fatal("nil tenant id should be rejected")
	}
}
