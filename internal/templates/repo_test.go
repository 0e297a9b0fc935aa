package templates

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
)

func setupTemplateTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS message_templates (
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  body TEXT NOT NULL,
  is_default BOOLEAN NOT NULL DEFAULT FALSE,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedTemplate(t *testing.T, repo *Repository, tenantID uuid.UUID, name string, isDefault bool, at time.Time) models.MessageTemplate {
	t.Helper()

	template := models.MessageTemplate{
		TenantID:  tenantID,
		Name:      name,
		Body:      "Hello {supplier_name}",
		IsDefault: isDefault,
		CreatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), &template))
	return template
}

func TestListDefaultsInSeedOrderThenCustomsByName(t *testing.T) {
	db := setupTemplateTestDB(t)
	repo := NewRepository(db)

	tenantID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seedTemplate(t, repo, tenantID, "Professional Reorder", true, base)
	seedTemplate(t, repo, tenantID, "Urgent Reorder", true, base.Add(time.Second))
	seedTemplate(t, repo, tenantID, "Friendly Reorder", true, base.Add(2*time.Second))

	// Custom templates sort by name regardless of when they were created.
	seedTemplate(t, repo, tenantID, "Zebra Restock", false, base.Add(time.Minute))
	seedTemplate(t, repo, tenantID, "Apple Restock", false, base.Add(2*time.Minute))

	rows, err := repo.List(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{
		"Professional Reorder",
		"Urgent Reorder",
		"Friendly Reorder",
		"Apple Restock",
		"Zebra Restock",
	}, names)
}

func TestListScopedToTenant(t *testing.T) {
	db := setupTemplateTestDB(t)
	repo := NewRepository(db)

	tenantID := uuid.New()
	otherTenant := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mine := seedTemplate(t, repo, tenantID, "Apple Restock", false, base)
	seedTemplate(t, repo, otherTenant, "Zebra Restock", false, base)

	rows, err := repo.List(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].ID)
}
