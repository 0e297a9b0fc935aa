package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/ravikiranj/stocktrail-backend/pkg/auth"
	"github.com/ravikiranj/stocktrail-backend/pkg/auth/session"
	"github.com/ravikiranj/stocktrail-backend/pkg/config"
	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
	"github.com/ravikiranj/stocktrail-backend/pkg/security"
)

type stubTenantRepo struct {
	tenant      *models.Tenant
	lastLoginAt *time.Time
}

func (s *stubTenantRepo) FindByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	if s.tenant == nil || s.tenant.Phone != phone {
		return nil, gorm.ErrRecordNotFound
	}
	return s.tenant, nil
}

func (s *stubTenantRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.lastLoginAt = &at
	return nil
}

type stubSessionManager struct {
	refreshToken string
	revoked      []string
	rotateErr    error
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	return session.NewAccessID(), s.refreshToken + "-rotated", nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "secret",
		Issuer:                 "stocktrail",
		ExpirationMinutes:      30,
		RefreshTokenTTLMinutes: 1440,
	}
}

func buildTestService(t *testing.T, tenant *models.Tenant) (Service, *stubTenantRepo, *stubSessionManager) {
	t.Helper()
	repo := &stubTenantRepo{tenant: tenant}
	sessionMgr := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		TenantRepo:     repo,
		SessionManager: sessionMgr,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo, sessionMgr
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func TestServiceLoginMintsTenantToken(t *testing.T) {
	password := "correct-horse"
	tenant := &models.Tenant{
		ID:             uuid.New(),
		DisplayName:    "Corner Kirana",
		Phone:          "+919876543210",
		CredentialHash: mustHashPassword(t, password),
	}

	svc, repo, _ := buildTestService(t, tenant)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Phone:    "+91 98765 43210",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.TenantID != tenant.ID {
		t.Fatalf("expected tenant claim %s, got %s", tenant.ID, claims.TenantID)
	}
	if resp.RefreshToken == "" {
		t.Fatalf("expected refresh token to be set")
	}
	if repo.lastLoginAt == nil {
		t.Fatalf("expected last login to be stamped")
	}
	if resp.Tenant.LastLoginAt == nil {
		t.Fatalf("expected response to carry last login")
	}
}

func TestServiceLoginWrongPassword(t *testing.T) {
	tenant := &models.Tenant{
		ID:             uuid.New(),
		DisplayName:    "Corner Kirana",
		Phone:          "+919876543210",
		CredentialHash: mustHashPassword(t, "right-password"),
	}

	svc, _, _ := buildTestService(t, tenant)

	_, err := svc.Login(context.Background(), LoginRequest{
		Phone:    tenant.Phone,
		Password: "wrong-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLoginUnknownPhone(t *testing.T) {
	svc, _, _ := buildTestService(t, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Phone:    "+919876543210",
		Password: "whatever1",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceRefreshRotatesPair(t *testing.T) {
	tenantID := uuid.New()
	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		TenantID: tenantID,
		JTI:      accessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	svc, _, _ := buildTestService(t, nil)

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if claims.TenantID != tenantID {
		t.Fatalf("expected tenant claim to survive rotation")
	}
	if claims.ID == accessID {
		t.Fatalf("expected a new access id after rotation")
	}
	if resp.RefreshToken != "refresh-token-rotated" {
		t.Fatalf("unexpected refresh token %q", resp.RefreshToken)
	}
}

func TestServiceRefreshRejectsBadToken(t *testing.T) {
	svc, _, sessionMgr := buildTestService(t, nil)
	sessionMgr.rotateErr = session.ErrInvalidRefreshToken

	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		TenantID: uuid.New(),
		JTI:      session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "stolen",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	svc, _, sessionMgr := buildTestService(t, nil)

	if err := svc.Logout(context.Background(), "access-id"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessionMgr.revoked) != 1 || sessionMgr.revoked[0] != "access-id" {
		t.Fatalf("expected session to be revoked, got %v", sessionMgr.revoked)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "+91 98765 43210", want: "+919876543210"},
		{in: "(987) 654-3210", want: "9876543210"},
		{in: "12345", wantErr: true},
		{in: "98765x43210", wantErr: true},
		{in: "98+76543210", wantErr: true},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("normalize %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalize %q = %q, want %q", tc.in, got, tc.want)
		}
	}
}
