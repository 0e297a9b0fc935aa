package products

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/internal/inventory"
	"github.com/ravikiranj/stocktrail-backend/internal/suppliers"
	"github.com/ravikiranj/stocktrail-backend/pkg/db"
	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

const defaultMinThreshold = 10

// Service defines the catalog operations needed by controllers.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*ProductDTO, error)
	Get(ctx context.Context, tenantID, productID uuid.UUID) (*ProductDTO, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]ProductDTO, error)
	Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateRequest) (*ProductDTO, error)
	Delete(ctx context.Context, tenantID, productID uuid.UUID) error
	Dashboard(ctx context.Context, tenantID uuid.UUID) (*DashboardSummary, error)
}

type service struct {
	db *db.Client
}

// NewService constructs a catalog service backed by the database client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &service{db: client}, nil
}

// Create inserts the product and seeds its ledger with an ADD entry in one
// transaction, so a product without a ledger trail can never exist.
func (s *service) Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*ProductDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if req.InitialQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "initial_quantity cannot be negative")
	}

	threshold := defaultMinThreshold
	if req.MinThreshold != nil {
		if *req.MinThreshold < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_threshold must be at least 1")
		}
		threshold = *req.MinThreshold
	}
	if req.UnitPrice != nil && req.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit_price cannot be negative")
	}

	var dto ProductDTO
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if req.SupplierID != nil {
			if err := ensureSupplier(ctx, tx, tenantID, *req.SupplierID); err != nil {
				return err
			}
		}

		product := &models.Product{
			ID:           uuid.New(),
			TenantID:     tenantID,
			Name:         name,
			SupplierID:   req.SupplierID,
			Quantity:     req.InitialQuantity,
			MinThreshold: threshold,
			Category:     req.Category,
			Description:  req.Description,
		}
		if req.UnitPrice != nil {
			product.UnitPrice.Decimal = *req.UnitPrice
			product.UnitPrice.Valid = true
		}

		repo := NewRepository(tx)
		if err := repo.Create(ctx, product); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
		}

		ledger := inventory.NewRepository(tx)
		entry := &models.InventoryLog{
			TenantID:         tenantID,
			ProductID:        product.ID,
			Action:           enums.InventoryActionAdd,
			QuantityChange:   req.InitialQuantity,
			PreviousQuantity: 0,
			NewQuantity:      req.InitialQuantity,
		}
		if err := ledger.AppendLog(ctx, entry); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed ledger")
		}

		dto = FromModel(product)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &dto, nil
}

func (s *service) Get(ctx context.Context, tenantID, productID uuid.UUID) (*ProductDTO, error) {
	repo := NewRepository(s.db.DB())
	row, err := repo.FindRowByID(ctx, tenantID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	dto := FromRow(row)
	return &dto, nil
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID) ([]ProductDTO, error) {
	repo := NewRepository(s.db.DB())
	rows, err := repo.List(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromRow(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateRequest) (*ProductDTO, error) {
	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.MinThreshold != nil {
		if *req.MinThreshold < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_threshold must be at least 1")
		}
		updates["min_threshold"] = *req.MinThreshold
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit_price cannot be negative")
		}
		updates["unit_price"] = *req.UnitPrice
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ClearSupplier {
		updates["supplier_id"] = nil
	}

	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if req.SupplierID != nil && !req.ClearSupplier {
			if err := ensureSupplier(ctx, tx, tenantID, *req.SupplierID); err != nil {
				return err
			}
			updates["supplier_id"] = *req.SupplierID
		}

		repo := NewRepository(tx)
		if _, err := repo.Update(ctx, tenantID, productID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Get(ctx, tenantID, productID)
}

func (s *service) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		affected, err := repo.Delete(ctx, tenantID, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
		}
		if affected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil
	})
}

func (s *service) Dashboard(ctx context.Context, tenantID uuid.UUID) (*DashboardSummary, error) {
	repo := NewRepository(s.db.DB())
	summary, err := repo.DashboardSummary(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "dashboard summary")
	}
	return summary, nil
}

func ensureSupplier(ctx context.Context, tx *gorm.DB, tenantID, supplierID uuid.UUID) error {
	if _, err := suppliers.NewRepository(tx).FindByID(ctx, tenantID, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "supplier not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup supplier")
	}
	return nil
}
