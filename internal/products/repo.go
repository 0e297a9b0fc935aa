package products

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// ProductRow is a product joined with its supplier's display fields.
type ProductRow struct {
	models.Product
	SupplierName    *string `gorm:"column:supplier_name"`
	SupplierContact *string `gorm:"column:supplier_contact"`
}

// Repository persists product rows. Every query is tenant scoped.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID loads one product scoped to the tenant.
func (r *Repository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		First(&product, "id = ? AND tenant_id = ?", id, tenantID).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindRowByID loads one product with its supplier fields.
func (r *Repository) FindRowByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductRow, error) {
	var row ProductRow
	err := r.baseRowQuery(ctx, tenantID).
		Where("products.id = ?", id).
		Take(&row).
		Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the tenant's products with supplier fields, ordered by name.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID) ([]ProductRow, error) {
	var rows []ProductRow
	err := r.baseRowQuery(ctx, tenantID).
		Order("products.name ASC, products.id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLowStock returns products at or below their threshold, most depleted
// first.
func (r *Repository) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]ProductRow, error) {
	var rows []ProductRow
	err := r.baseRowQuery(ctx, tenantID).
		Where("products.quantity <= products.min_threshold").
		Order("products.quantity ASC, products.name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update applies field changes to a tenant's product.
func (r *Repository) Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes the product and its ledger rows.
func (r *Repository) Delete(ctx context.Context, tenantID, id uuid.UUID) (int64, error) {
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.InventoryLog{}).
		Error
	if err != nil {
		return 0, err
	}
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&models.Product{})
	return result.RowsAffected, result.Error
}

// DashboardSummary aggregates catalog counts and total inventory value.
func (r *Repository) DashboardSummary(ctx context.Context, tenantID uuid.UUID) (*DashboardSummary, error) {
	var summary struct {
		TotalProducts  int
		LowStockCount  int
		InventoryValue decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select(
			"COUNT(*) AS total_products, "+
				"COUNT(*) FILTER (WHERE quantity <= min_threshold) AS low_stock_count, "+
				"SUM(quantity * COALESCE(unit_price, 0)) AS inventory_value",
		).
		Where("tenant_id = ?", tenantID).
		Take(&summary).
		Error
	if err != nil {
		return nil, err
	}

	var supplierCount int64
	err = r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("tenant_id = ?", tenantID).
		Count(&supplierCount).
		Error
	if err != nil {
		return nil, err
	}

	value := decimal.Zero
	if summary.InventoryValue.Valid {
		value = summary.InventoryValue.Decimal
	}
	return &DashboardSummary{
		TotalProducts:  summary.TotalProducts,
		TotalSuppliers: int(supplierCount),
		LowStockCount:  summary.LowStockCount,
		InventoryValue: value,
	}, nil
}

func (r *Repository) baseRowQuery(ctx context.Context, tenantID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("products.*, suppliers.name AS supplier_name, suppliers.contact_number AS supplier_contact").
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id AND suppliers.tenant_id = products.tenant_id").
		Where("products.tenant_id = ?", tenantID)
}
