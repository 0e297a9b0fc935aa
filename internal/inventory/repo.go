package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/pagination"
)

// Repository owns ledger rows and the locked product reads that feed them.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindProductForUpdate loads the tenant's product under a row lock. Callers
// must run inside a transaction; concurrent mutations on the same product
// serialize here.
func (r *Repository) FindProductForUpdate(ctx context.Context, tenantID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ? AND tenant_id = ?", productID, tenantID).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SetProductQuantity writes the new quantity for a locked product row.
func (r *Repository) SetProductQuantity(ctx context.Context, tenantID, productID uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND tenant_id = ?", productID, tenantID).
		Update("quantity", quantity).
		Error
}

// AppendLog inserts an immutable ledger entry.
func (r *Repository) AppendLog(ctx context.Context, entry *models.InventoryLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListLogs returns a product's ledger entries newest first using cursor
// pagination. Pass uuid.Nil as productID to page over the whole tenant.
func (r *Repository) ListLogs(ctx context.Context, tenantID, productID uuid.UUID, params pagination.Params) ([]models.InventoryLog, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	if productID != uuid.Nil {
		query = query.Where("product_id = ?", productID)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where(
			"(created_at, id) < (?, ?)",
			cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.InventoryLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplayQuantity folds a product's ledger entries oldest first and returns
// the reconstructed quantity. Used by consistency checks.
func (r *Repository) ReplayQuantity(ctx context.Context, tenantID, productID uuid.UUID) (int, error) {
	var rows []models.InventoryLog
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("created_at ASC, id ASC").
		Find(&rows).
		Error
	if err != nil {
		return 0, err
	}

	quantity := 0
	for _, row := range rows {
		quantity += row.QuantityChange
	}
	return quantity, nil
}
