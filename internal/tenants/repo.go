package tenants

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// Repository persists tenant identity rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateTenantDTO carries the fields needed to insert a tenant.
type CreateTenantDTO struct {
	DisplayName    string
	Phone          string
	CredentialHash string
}

// Create inserts a new tenant row and returns it with its generated id.
func (r *Repository) Create(ctx context.Context, dto CreateTenantDTO) (*models.Tenant, error) {
	tenant := &models.Tenant{
		ID:             uuid.New(),
		DisplayName:    dto.DisplayName,
		Phone:          dto.Phone,
		CredentialHash: dto.CredentialHash,
	}
	if err := r.db.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

// FindByPhone loads the tenant registered with the given login handle.
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "phone = ?", phone).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// FindByID loads a tenant by id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// TouchLastLogin stamps the tenant's last successful login.
func (r *Repository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", id).
		Update("last_login_at", at).
		Error
}
