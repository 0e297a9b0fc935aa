package inventory

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikiranj/stocktrail-backend/pkg/config"
	"github.com/ravikiranj/stocktrail-backend/pkg/db"
	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	"github.com/ravikiranj/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

func openLedgerDB(t *testing.T) *db.Client {
	t.Helper()

	dsn := os.Getenv("STOCKTRAIL_DB_DSN")
	if dsn == "" {
		t.Skip("STOCKTRAIL_DB_DSN is not set")
	}

	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedTenantWithProduct(t *testing.T, client *db.Client, quantity int) (uuid.UUID, uuid.UUID) {
	t.Helper()

	tenant := models.Tenant{
		ID:             uuid.New(),
		DisplayName:    "Ledger Test Store",
		Phone:          fmt.Sprintf("+1%010d", time.Now().UnixNano()%1e10),
		CredentialHash: "unused",
	}
	require.NoError(t, client.DB().Create(&tenant).Error)

	product := models.Product{
		ID:       uuid.New(),
		TenantID: tenant.ID,
		Name:     "Masala Chai 250g",
		Quantity: quantity,
	}
	require.NoError(t, client.DB().Create(&product).Error)

	t.Cleanup(func() {
		client.DB().Where("tenant_id = ?", tenant.ID).Delete(&models.InventoryLog{})
		client.DB().Where("tenant_id = ?", tenant.ID).Delete(&models.Product{})
		client.DB().Where("id = ?", tenant.ID).Delete(&models.Tenant{})
	})
	return tenant.ID, product.ID
}

func TestAdjustWritesQuantityAndLedgerEntry(t *testing.T) {
	client := openLedgerDB(t)
	tenantID, productID := seedTenantWithProduct(t, client, 10)

	svc, err := NewService(client)
	require.NoError(t, err)

	result, err := svc.Adjust(context.Background(), tenantID, productID, AdjustRequest{
		Action: "INCREASE",
		Delta:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, result.Quantity)

	var product models.Product
	require.NoError(t, client.DB().First(&product, "id = ?", productID).Error)
	assert.Equal(t, 15, product.Quantity)

	var entry models.InventoryLog
	require.NoError(t, client.DB().First(&entry, "id = ?", result.Entry.ID).Error)
	assert.Equal(t, enums.InventoryActionIncrease, entry.Action)
	assert.Equal(t, 5, entry.QuantityChange)
	assert.Equal(t, 10, entry.PreviousQuantity)
	assert.Equal(t, 15, entry.NewQuantity)
	assert.Equal(t, entry.PreviousQuantity+entry.QuantityChange, entry.NewQuantity)
}

func TestAdjustDefaultsMissingActionToUpdate(t *testing.T) {
	client := openLedgerDB(t)
	tenantID, productID := seedTenantWithProduct(t, client, 10)

	svc, err := NewService(client)
	require.NoError(t, err)

	result, err := svc.Adjust(context.Background(), tenantID, productID, AdjustRequest{
		NewQuantity: intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Quantity)
	assert.Equal(t, enums.InventoryActionUpdate, result.Entry.Action)
	assert.Equal(t, -6, result.Entry.QuantityChange)
}

func TestAdjustOtherTenantProductNotFound(t *testing.T) {
	client := openLedgerDB(t)
	_, productID := seedTenantWithProduct(t, client, 10)
	otherTenant, _ := seedTenantWithProduct(t, client, 3)

	svc, err := NewService(client)
	require.NoError(t, err)

	_, err = svc.Adjust(context.Background(), otherTenant, productID, AdjustRequest{
		Action: "INCREASE",
		Delta:  5,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
