package messages

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/internal/suppliers"
	"github.com/ravikiranj/stocktrail-backend/internal/templates"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

type stubTemplates struct {
	template *templates.TemplateDTO
}

func (s *stubTemplates) Get(ctx context.Context, tenantID, templateID uuid.UUID) (*templates.TemplateDTO, error) {
	if s.template == nil || s.template.ID != templateID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
	}
	return s.template, nil
}

type stubSuppliers struct {
	supplier *suppliers.SupplierDTO
}

func (s *stubSuppliers) Get(ctx context.Context, tenantID, supplierID uuid.UUID) (*suppliers.SupplierDTO, error) {
	if s.supplier == nil || s.supplier.ID != supplierID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}
	return s.supplier, nil
}

func newComposeFixture(t *testing.T) (Service, *templates.TemplateDTO, *suppliers.SupplierDTO) {
	t.Helper()
	template := &templates.TemplateDTO{
		ID:   uuid.New(),
		Name: "Professional Reorder",
		Body: "Hello {supplier_name},\n{items_list}\n{company_name}",
	}
	supplier := &suppliers.SupplierDTO{
		ID:            uuid.New(),
		Name:          "Acme Traders",
		ContactNumber: "+91 98765 43210",
	}
	svc, err := NewService(ServiceParams{
		Templates: &stubTemplates{template: template},
		Suppliers: &stubSuppliers{supplier: supplier},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, template, supplier
}

func TestComposeRendersAndLinks(t *testing.T) {
	svc, template, supplier := newComposeFixture(t)

	resp, err := svc.Compose(context.Background(), uuid.New(), ComposeRequest{
		TemplateID: template.ID,
		SupplierID: supplier.ID,
		Items:      []Item{{Name: "Rice 5kg", Quantity: 17, CurrentStock: 3}},
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if !strings.Contains(resp.Message, "Hello Acme Traders,") {
		t.Fatalf("supplier name missing from message: %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "• Rice 5kg: 17 units (Current stock: 3)") {
		t.Fatalf("items list missing from message: %q", resp.Message)
	}
	if !strings.Contains(resp.Message, DefaultCompanyName) {
		t.Fatalf("default company name missing: %q", resp.Message)
	}
	if !strings.HasPrefix(resp.DeepLink, "https://wa.me/919876543210?text=") {
		t.Fatalf("unexpected deep link %q", resp.DeepLink)
	}
}

func TestComposeRequiresItems(t *testing.T) {
	svc, template, supplier := newComposeFixture(t)

	_, err := svc.Compose(context.Background(), uuid.New(), ComposeRequest{
		TemplateID: template.ID,
		SupplierID: supplier.ID,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComposeUnknownTemplate(t *testing.T) {
	svc, _, supplier := newComposeFixture(t)

	_, err := svc.Compose(context.Background(), uuid.New(), ComposeRequest{
		TemplateID: uuid.New(),
		SupplierID: supplier.ID,
		Items:      []Item{{Name: "Salt", Quantity: 2, CurrentStock: 0}},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestComposeCustomCompanyName(t *testing.T) {
	svc, template, supplier := newComposeFixture(t)

	name := "StockTrail Mart"
	resp, err := svc.Compose(context.Background(), uuid.New(), ComposeRequest{
		TemplateID:  template.ID,
		SupplierID:  supplier.ID,
		CompanyName: &name,
		Items:       []Item{{Name: "Salt", Quantity: 2, CurrentStock: 0}},
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(resp.Message, name) {
		t.Fatalf("expected custom company name in message: %q", resp.Message)
	}
}
