package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ravikiranj/stocktrail-backend/internal/suppliers"
	"github.com/ravikiranj/stocktrail-backend/internal/templates"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

// ComposeRequest builds one reorder message for a supplier.
type ComposeRequest struct {
	TemplateID  uuid.UUID `json:"template_id" validate:"required"`
	SupplierID  uuid.UUID `json:"supplier_id" validate:"required"`
	CompanyName *string   `json:"company_name,omitempty"`
	Items       []Item    `json:"items" validate:"required,min=1,dive"`
}

// ComposeResponse carries the rendered message and its send link.
type ComposeResponse struct {
	SupplierName  string `json:"supplier_name"`
	ContactNumber string `json:"contact_number"`
	Message       string `json:"message"`
	DeepLink      string `json:"deep_link"`
}

// Service defines the composer operations needed by controllers.
type Service interface {
	Compose(ctx context.Context, tenantID uuid.UUID, req ComposeRequest) (*ComposeResponse, error)
}

type templateGetter interface {
	Get(ctx context.Context, tenantID, templateID uuid.UUID) (*templates.TemplateDTO, error)
}

type supplierGetter interface {
	Get(ctx context.Context, tenantID, supplierID uuid.UUID) (*suppliers.SupplierDTO, error)
}

type service struct {
	templates templateGetter
	suppliers supplierGetter
}

// ServiceParams bundles the dependencies required to build a composer service.
type ServiceParams struct {
	Templates templateGetter
	Suppliers supplierGetter
}

// NewService constructs a composer service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Templates == nil {
		return nil, fmt.Errorf("templates service is required")
	}
	if params.Suppliers == nil {
		return nil, fmt.Errorf("suppliers service is required")
	}
	return &service{
		templates: params.Templates,
		suppliers: params.Suppliers,
	}, nil
}

// Compose loads the template and supplier, renders the message, and returns
// it with a wa.me deep link. It never mutates any state.
func (s *service) Compose(ctx context.Context, tenantID uuid.UUID, req ComposeRequest) (*ComposeResponse, error) {
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "items are required")
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
	}

	template, err := s.templates.Get(ctx, tenantID, req.TemplateID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.suppliers.Get(ctx, tenantID, req.SupplierID)
	if err != nil {
		return nil, err
	}

	companyName := ""
	if req.CompanyName != nil {
		companyName = strings.TrimSpace(*req.CompanyName)
	}

	message := Render(template.Body, supplier.Name, companyName, req.Items)
	return &ComposeResponse{
		SupplierName:  supplier.Name,
		ContactNumber: supplier.ContactNumber,
		Message:       message,
		DeepLink:      BuildDeepLink(supplier.ContactNumber, message),
	}, nil
}
