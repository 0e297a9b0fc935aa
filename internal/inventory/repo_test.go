package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
	"github.com/ravikiranj/stocktrail-backend/pkg/pagination"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS inventory_logs (
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  action TEXT NOT NULL,
  quantity_change INTEGER NOT NULL,
  previous_quantity INTEGER NOT NULL,
  new_quantity INTEGER NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedLog(t *testing.T, repo *Repository, tenantID, productID uuid.UUID, change, prev int, at time.Time) models.InventoryLog {
	t.Helper()

	entry := models.InventoryLog{
		TenantID:         tenantID,
		ProductID:        productID,
		Action:           enums.InventoryActionIncrease,
		QuantityChange:   change,
		PreviousQuantity: prev,
		NewQuantity:      prev + change,
		CreatedAt:        at,
	}
	require.NoError(t, repo.AppendLog(context.Background(), &entry))
	require.NotEqual(t, uuid.Nil, entry.ID)
	return entry
}

func TestListLogsNewestFirstAndTenantScoped(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	tenantID := uuid.New()
	otherTenant := uuid.New()
	productID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := seedLog(t, repo, tenantID, productID, 5, 0, base)
	second := seedLog(t, repo, tenantID, productID, 3, 5, base.Add(time.Minute))
	seedLog(t, repo, otherTenant, productID, 9, 0, base.Add(2*time.Minute))

	rows, err := repo.ListLogs(context.Background(), tenantID, productID, pagination.Params{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}

func TestListLogsCursorPagesBackwards(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	tenantID := uuid.New()
	productID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	oldest := seedLog(t, repo, tenantID, productID, 5, 0, base)
	middle := seedLog(t, repo, tenantID, productID, 3, 5, base.Add(time.Minute))
	seedLog(t, repo, tenantID, productID, -2, 8, base.Add(2*time.Minute))

	cursor := pagination.EncodeCursor(pagination.Cursor{
		CreatedAt: middle.CreatedAt,
		ID:        middle.ID,
	})
	rows, err := repo.ListLogs(context.Background(), tenantID, productID, pagination.Params{Limit: 10, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, oldest.ID, rows[0].ID)
}

func TestListLogsRejectsMalformedCursor(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	_, err := repo.ListLogs(context.Background(), uuid.New(), uuid.New(), pagination.Params{Limit: 10, Cursor: "%%%"})
	require.Error(t, err)
}

func TestReplayQuantityFoldsLedger(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	tenantID := uuid.New()
	productID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedLog(t, repo, tenantID, productID, 10, 0, base)
	seedLog(t, repo, tenantID, productID, -4, 10, base.Add(time.Minute))
	seedLog(t, repo, tenantID, productID, 7, 6, base.Add(2*time.Minute))

	quantity, err := repo.ReplayQuantity(context.Background(), tenantID, productID)
	require.NoError(t, err)
	assert.Equal(t, 13, quantity)
}

func TestReplayQuantityEmptyLedger(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewRepository(db)

	quantity, err := repo.ReplayQuantity(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)
}
