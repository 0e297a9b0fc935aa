package auth

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/internal/provisioning"
	"github.com/ravikiranj/stocktrail-backend/internal/tenants"
	"github.com/ravikiranj/stocktrail-backend/pkg/config"
	"github.com/ravikiranj/stocktrail-backend/pkg/db"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
	"github.com/ravikiranj/stocktrail-backend/pkg/security"
)

const minPasswordLength = 8

// RegisterRequest contains the payload required to provision a new tenant.
type RegisterRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// RegisterService handles the tenant onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*TenantSummary, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Register creates the tenant and seeds its default templates in a single
// transaction. A failure at any step leaves no trace of the tenant.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*TenantSummary, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "display_name is required")
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}

	credentialHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var summary TenantSummary
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		tenantRepo := tenants.NewRepository(tx)

		if _, err := tenantRepo.FindByPhone(ctx, phone); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "phone already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check tenant phone")
		}

		tenant, err := tenantRepo.Create(ctx, tenants.CreateTenantDTO{
			DisplayName:    displayName,
			Phone:          phone,
			CredentialHash: credentialHash,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_tenants_phone") {
				return pkgerrors.New(pkgerrors.CodeConflict, "phone already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create tenant")
		}

		if err := provisioning.Provision(ctx, tx, tenant.ID); err != nil {
			return err
		}

		summary = FromModel(tenant)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &summary, nil
}

// NormalizePhone strips separators from a phone handle and validates the
// remainder is a plausible international number.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')':
			// separators allowed on input, dropped from the handle
		default:
			return "", pkgerrors.New(pkgerrors.CodeValidation, "phone contains invalid characters")
		}
	}

	digits := strings.TrimPrefix(b.String(), "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "phone must contain 7 to 15 digits")
	}
	return b.String(), nil
}
