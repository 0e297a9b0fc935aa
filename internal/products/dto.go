package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
)

// ProductDTO is the product shape returned by the API.
type ProductDTO struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	SupplierID      *uuid.UUID       `json:"supplier_id,omitempty"`
	SupplierName    *string          `json:"supplier_name,omitempty"`
	SupplierContact *string          `json:"supplier_contact,omitempty"`
	Quantity        int              `json:"quantity"`
	MinThreshold    int              `json:"min_threshold"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Description     *string          `json:"description,omitempty"`
	LowStock        bool             `json:"low_stock"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// FromModel converts a product row into its API shape.
func FromModel(product *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:           product.ID,
		Name:         product.Name,
		SupplierID:   product.SupplierID,
		Quantity:     product.Quantity,
		MinThreshold: product.MinThreshold,
		Category:     product.Category,
		Description:  product.Description,
		LowStock:     product.Quantity <= product.MinThreshold,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	if product.UnitPrice.Valid {
		price := product.UnitPrice.Decimal
		dto.UnitPrice = &price
	}
	return dto
}

// FromRow converts a joined product row into its API shape.
func FromRow(row *ProductRow) ProductDTO {
	dto := FromModel(&row.Product)
	dto.SupplierName = row.SupplierName
	dto.SupplierContact = row.SupplierContact
	return dto
}

// CreateRequest is the payload for adding a product. InitialQuantity seeds
// the ledger with an ADD entry.
type CreateRequest struct {
	Name            string           `json:"name" validate:"required"`
	SupplierID      *uuid.UUID       `json:"supplier_id,omitempty"`
	InitialQuantity int              `json:"initial_quantity"`
	MinThreshold    *int             `json:"min_threshold,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Description     *string          `json:"description,omitempty"`
}

// UpdateRequest edits a product's descriptive fields. Quantity is absent on
// purpose: stock only moves through the ledger.
type UpdateRequest struct {
	Name          *string          `json:"name,omitempty"`
	SupplierID    *uuid.UUID       `json:"supplier_id,omitempty"`
	ClearSupplier bool             `json:"clear_supplier,omitempty"`
	MinThreshold  *int             `json:"min_threshold,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

// DashboardSummary aggregates tenant-wide catalog figures.
type DashboardSummary struct {
	TotalProducts  int             `json:"total_products"`
	TotalSuppliers int             `json:"total_suppliers"`
	LowStockCount  int             `json:"low_stock_count"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
