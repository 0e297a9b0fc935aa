package templates

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// Repository persists message template rows. Every query is tenant scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a custom template for the tenant.
func (r *Repository) Create(ctx context.Context, template *models.MessageTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(template).Error
}

// FindByID loads one template scoped to the tenant.
func (r *Repository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MessageTemplate, error) {
	var template models.MessageTemplate
	err := r.db.WithContext(ctx).
		First(&template, "id = ? AND tenant_id = ?", id, tenantID).
		Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// List returns the tenant's templates with defaults first in seed order,
// then custom templates alphabetically.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID) ([]models.MessageTemplate, error) {
	var rows []models.MessageTemplate
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("is_default DESC, CASE WHEN is_default THEN created_at END ASC, name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies field changes to a template row.
func (r *Repository) Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.MessageTemplate{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(updates).
		Error
}

// Delete removes a template row.
func (r *Repository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.MessageTemplate{}).
		Error
}
