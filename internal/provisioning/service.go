package provisioning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

// TemplateSeed describes one canonical default template.
type TemplateSeed struct {
	Name string
	Body string
}

// DefaultTemplates returns the three canonical reorder templates seeded for
// every new tenant. Order matters: it is the stable display order among
// defaults.
func DefaultTemplates() []TemplateSeed {
	return []TemplateSeed{
		{
			Name: "Professional Reorder",
			Body: `Hello {supplier_name},

I hope this message finds you well. We need to reorder the following items:

{items_list}

Please confirm availability and provide updated pricing in Rupees (₹).

Best regards,
{company_name}`,
		},
		{
			Name: "Urgent Reorder",
			Body: `🚨 URGENT REORDER REQUEST 🚨

Hi {supplier_name},

We urgently need the following items:

{items_list}

Please prioritize this order and confirm delivery timeline with pricing in ₹.

Thanks,
{company_name}`,
		},
		{
			Name: "Friendly Reorder",
			Body: `Hi {supplier_name}! 👋

Hope you're doing great! We need to stock up on:

{items_list}

Let me know when you can deliver these with pricing in ₹. Thanks!

{company_name}`,
		},
	}
}

// Provision idempotently seeds the tenant's default templates. It runs inside
// the caller's transaction so a failure leaves the tenant with nothing rather
// than a partial set. Calling it again for an already-provisioned tenant is a
// no-op.
func Provision(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) error {
	if tenantID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "tenant id is required")
	}

	var count int64
	if err := tx.WithContext(ctx).
		Model(&models.MessageTemplate{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count tenant templates")
	}
	if count > 0 {
		return nil
	}

	for _, seed := range DefaultTemplates() {
		template := &models.MessageTemplate{
			ID:        uuid.New(),
			TenantID:  tenantID,
			Name:      seed.Name,
			Body:      seed.Body,
			IsDefault: true,
		}
		if err := tx.WithContext(ctx).Create(template).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed default template")
		}
	}
	return nil
}
