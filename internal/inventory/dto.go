package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
)

// AdjustRequest mutates a product's quantity through the ledger.
//
// An absent action defaults to UPDATE. Every action accepts new_quantity as
// the target stock level; INCREASE and DECREASE additionally accept a signed
// delta (positive and negative respectively). When both are supplied they
// must agree.
type AdjustRequest struct {
	Action      string `json:"action,omitempty"`
	Delta       int    `json:"delta,omitempty"`
	NewQuantity *int   `json:"new_quantity,omitempty"`
}

// LogDTO is the ledger entry shape returned by the API.
type LogDTO struct {
	ID               uuid.UUID             `json:"id"`
	ProductID        uuid.UUID             `json:"product_id"`
	Action           enums.InventoryAction `json:"action"`
	QuantityChange   int                   `json:"quantity_change"`
	PreviousQuantity int                   `json:"previous_quantity"`
	NewQuantity      int                   `json:"new_quantity"`
	CreatedAt        time.Time             `json:"created_at"`
}

// LogFromModel converts a ledger row into its API shape.
func LogFromModel(entry *models.InventoryLog) LogDTO {
	return LogDTO{
		ID:               entry.ID,
		ProductID:        entry.ProductID,
		Action:           entry.Action,
		QuantityChange:   entry.QuantityChange,
		PreviousQuantity: entry.PreviousQuantity,
		NewQuantity:      entry.NewQuantity,
		CreatedAt:        entry.CreatedAt,
	}
}

// AdjustResult reports the applied mutation.
type AdjustResult struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Entry     LogDTO    `json:"entry"`
}

// LogPage is one page of ledger entries.
type LogPage struct {
	Entries    []LogDTO `json:"entries"`
	NextCursor string   `json:"next_cursor,omitempty"`
}

// ConsistencyReport compares a product's stored quantity against the value
// reconstructed by replaying its ledger.
type ConsistencyReport struct {
	ProductID        uuid.UUID `json:"product_id"`
	StoredQuantity   int       `json:"stored_quantity"`
	ReplayedQuantity int       `json:"replayed_quantity"`
	Consistent       bool      `json:"consistent"`
}
