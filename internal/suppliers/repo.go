package suppliers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// Repository persists supplier rows. Every query is tenant scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSupplierDTO carries the fields needed to insert a supplier.
type CreateSupplierDTO struct {
	Name          string
	ContactNumber string
	Email         *string
	Address       *string
}

// UpdateSupplierDTO carries optional field updates. Nil means leave unchanged.
type UpdateSupplierDTO struct {
	Name          *string
	ContactNumber *string
	Email         *string
	Address       *string
}

// Create inserts a supplier for the tenant.
func (r *Repository) Create(ctx context.Context, tenantID uuid.UUID, dto CreateSupplierDTO) (*models.Supplier, error) {
	supplier := &models.Supplier{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Name:          dto.Name,
		ContactNumber: dto.ContactNumber,
		Email:         dto.Email,
		Address:       dto.Address,
	}
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// FindByID loads one supplier scoped to the tenant.
func (r *Repository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).
		First(&supplier, "id = ? AND tenant_id = ?", id, tenantID).
		Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List returns the tenant's suppliers ordered by name.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID) ([]models.Supplier, error) {
	var rows []models.Supplier
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC, id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies the provided field changes to a tenant's supplier.
func (r *Repository) Update(ctx context.Context, tenantID, id uuid.UUID, dto UpdateSupplierDTO) (int64, error) {
	updates := map[string]any{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.ContactNumber != nil {
		updates["contact_number"] = *dto.ContactNumber
	}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.Address != nil {
		updates["address"] = *dto.Address
	}
	if len(updates) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes the supplier row. Products referencing it keep their rows;
// the FK sets supplier_id to NULL.
func (r *Repository) Delete(ctx context.Context, tenantID, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.Supplier{})
	return result.RowsAffected, result.Error
}
