package alerts

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/internal/products"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

// UnknownSupplierName labels low-stock items whose product has no supplier.
const UnknownSupplierName = "Unknown Supplier"

// LowStockItem is one product at or below its reorder threshold.
type LowStockItem struct {
	ProductID        uuid.UUID  `json:"product_id"`
	Name             string     `json:"name"`
	Quantity         int        `json:"quantity"`
	MinThreshold     int        `json:"min_threshold"`
	SuggestedReorder int        `json:"suggested_reorder"`
	SupplierID       *uuid.UUID `json:"supplier_id,omitempty"`
	SupplierName     *string    `json:"supplier_name,omitempty"`
	SupplierContact  *string    `json:"supplier_contact,omitempty"`
}

// SupplierGroup bundles a supplier's low-stock items for one reorder message.
type SupplierGroup struct {
	SupplierID    *uuid.UUID     `json:"supplier_id,omitempty"`
	SupplierName  string         `json:"supplier_name"`
	ContactNumber *string        `json:"contact_number,omitempty"`
	Items         []LowStockItem `json:"items"`
}

// Service defines the alerting operations needed by controllers.
type Service interface {
	LowStock(ctx context.Context, tenantID uuid.UUID) ([]LowStockItem, error)
	LowStockBySupplier(ctx context.Context, tenantID uuid.UUID) ([]SupplierGroup, error)
}

type lowStockLister interface {
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]products.ProductRow, error)
}

type service struct {
	catalog lowStockLister
}

// NewService constructs an alerts service over the product catalog.
func NewService(catalog lowStockLister) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("product catalog is required")
	}
	return &service{catalog: catalog}, nil
}

// LowStock returns the tenant's depleted products, most depleted first.
func (s *service) LowStock(ctx context.Context, tenantID uuid.UUID) ([]LowStockItem, error) {
	rows, err := s.catalog.ListLowStock(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list low stock")
	}

	items := make([]LowStockItem, 0, len(rows))
	for i := range rows {
		items = append(items, itemFromRow(&rows[i]))
	}
	return items, nil
}

// LowStockBySupplier groups the low-stock report per supplier so each group
// can feed one reorder message. Items without a supplier fall into the
// Unknown Supplier group, which sorts last.
func (s *service) LowStockBySupplier(ctx context.Context, tenantID uuid.UUID) ([]SupplierGroup, error) {
	items, err := s.LowStock(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return GroupBySupplier(items), nil
}

// GroupBySupplier partitions low-stock items by supplier, preserving the
// per-item order within each group.
func GroupBySupplier(items []LowStockItem) []SupplierGroup {
	groups := map[string]*SupplierGroup{}
	for _, item := range items {
		key := UnknownSupplierName
		if item.SupplierID != nil {
			key = item.SupplierID.String()
		}

		group, ok := groups[key]
		if !ok {
			group = &SupplierGroup{
				SupplierID:    item.SupplierID,
				SupplierName:  UnknownSupplierName,
				ContactNumber: item.SupplierContact,
			}
			if item.SupplierName != nil {
				group.SupplierName = *item.SupplierName
			}
			groups[key] = group
		}
		group.Items = append(group.Items, item)
	}

	out := make([]SupplierGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].SupplierID == nil) != (out[j].SupplierID == nil) {
			return out[j].SupplierID == nil
		}
		return out[i].SupplierName < out[j].SupplierName
	})
	return out
}

// SuggestReorderQuantity proposes how much to reorder: enough to land at
// twice the threshold, never less than one unit.
func SuggestReorderQuantity(quantity, minThreshold int) int {
	suggested := 2*minThreshold - quantity
	if suggested < 1 {
		return 1
	}
	return suggested
}

func itemFromRow(row *products.ProductRow) LowStockItem {
	return LowStockItem{
		ProductID:        row.ID,
		Name:             row.Name,
		Quantity:         row.Quantity,
		MinThreshold:     row.MinThreshold,
		SuggestedReorder: SuggestReorderQuantity(row.Quantity, row.MinThreshold),
		SupplierID:       row.SupplierID,
		SupplierName:     row.SupplierName,
		SupplierContact:  row.SupplierContact,
	}
}
