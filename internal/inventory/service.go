package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db"
	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
	"github.com/ravikiranj/stocktrail-backend/pkg/pagination"
)

// Service defines the ledger operations needed by controllers.
type Service interface {
	Adjust(ctx context.Context, tenantID, productID uuid.UUID, req AdjustRequest) (*AdjustResult, error)
	ListLogs(ctx context.Context, tenantID, productID uuid.UUID, params pagination.Params) (*LogPage, error)
	CheckConsistency(ctx context.Context, tenantID, productID uuid.UUID) (*ConsistencyReport, error)
}

type service struct {
	db *db.Client
}

// NewService constructs a ledger service backed by the database client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

// Adjust applies a quantity mutation and appends the matching ledger entry in
// one transaction. The product row is locked for the duration so concurrent
// mutations serialize and no update is lost.
func (s *service) Adjust(ctx context.Context, tenantID, productID uuid.UUID, req AdjustRequest) (*AdjustResult, error) {
	action, err := normalizeAction(req.Action)
	if err != nil {
		return nil, err
	}

	var result AdjustResult
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		product, err := repo.FindProductForUpdate(ctx, tenantID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lock product")
		}

		change, next, err := resolveChange(action, product.Quantity, req.Delta, req.NewQuantity)
		if err != nil {
			return err
		}

		if err := repo.SetProductQuantity(ctx, tenantID, productID, next); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write quantity")
		}

		entry := &models.InventoryLog{
			TenantID:         tenantID,
			ProductID:        productID,
			Action:           action,
			QuantityChange:   change,
			PreviousQuantity: product.Quantity,
			NewQuantity:      next,
		}
		if err := repo.AppendLog(ctx, entry); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append ledger entry")
		}

		result = AdjustResult{
			ProductID: productID,
			Quantity:  next,
			Entry:     LogFromModel(entry),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}

func (s *service) ListLogs(ctx context.Context, tenantID, productID uuid.UUID, params pagination.Params) (*LogPage, error) {
	repo := NewRepository(s.db.DB())

	rows, err := repo.ListLogs(ctx, tenantID, productID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list ledger entries")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	page := &LogPage{Entries: make([]LogDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
			break
		}
		page.Entries = append(page.Entries, LogFromModel(&rows[i]))
	}
	return page, nil
}

func (s *service) CheckConsistency(ctx context.Context, tenantID, productID uuid.UUID) (*ConsistencyReport, error) {
	repo := NewRepository(s.db.DB())

	var product models.Product
	err := s.db.DB().WithContext(ctx).
		First(&product, "id = ? AND tenant_id = ?", productID, tenantID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	replayed, err := repo.ReplayQuantity(ctx, tenantID, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "replay ledger")
	}

	return &ConsistencyReport{
		ProductID:        productID,
		StoredQuantity:   product.Quantity,
		ReplayedQuantity: replayed,
		Consistent:       replayed == product.Quantity,
	}, nil
}

// normalizeAction maps the request's action field onto the ledger action set.
// A missing action means "set the quantity", so it falls back to UPDATE.
func normalizeAction(raw string) (enums.InventoryAction, error) {
	if strings.TrimSpace(raw) == "" {
		return enums.InventoryActionUpdate, nil
	}
	action, err := enums.ParseInventoryAction(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid action")
	}
	if action == enums.InventoryActionAdd {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "ADD is reserved for product creation")
	}
	return action, nil
}

// resolveChange validates the requested mutation against the action's sign
// contract and the current quantity, returning the signed change and the
// resulting quantity. Every action accepts new_quantity as the target;
// INCREASE and DECREASE also accept a signed delta. Supplying both is only
// valid when they agree.
func resolveChange(action enums.InventoryAction, current, delta int, newQuantity *int) (int, int, error) {
	if newQuantity != nil {
		if *newQuantity < 0 {
			return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "new_quantity cannot be negative")
		}
		derived := *newQuantity - current
		if delta != 0 && delta != derived {
			return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "delta conflicts with new_quantity").
				WithDetails(map[string]int{"current_quantity": current})
		}
		delta = derived
	}

	switch action {
	case enums.InventoryActionIncrease:
		if delta <= 0 {
			return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "INCREASE requires a positive change")
		}
	case enums.InventoryActionDecrease:
		if delta >= 0 {
			return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "DECREASE requires a negative change")
		}
	case enums.InventoryActionUpdate:
		if newQuantity == nil {
			return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "UPDATE requires new_quantity")
		}
	default:
		return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid action")
	}

	next := current + delta
	if next < 0 {
		return 0, 0, pkgerrors.New(pkgerrors.CodeValidation, "insufficient stock").
			WithDetails(map[string]int{"current_quantity": current})
	}
	return delta, next, nil
}
