package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

// SupplierDTO is the supplier shape returned by the API.
type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Email         *string   `json:"email,omitempty"`
	Address       *string   `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromModel converts a supplier row into its API shape.
func FromModel(supplier *models.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:            supplier.ID,
		Name:          supplier.Name,
		ContactNumber: supplier.ContactNumber,
		Email:         supplier.Email,
		Address:       supplier.Address,
		CreatedAt:     supplier.CreatedAt,
		UpdatedAt:     supplier.UpdatedAt,
	}
}

// CreateRequest is the payload for registering a supplier.
type CreateRequest struct {
	Name          string  `json:"name" validate:"required"`
	ContactNumber string  `json:"contact_number" validate:"required"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string `json:"address,omitempty"`
}

// UpdateRequest is the payload for editing a supplier. Absent fields are
// left unchanged.
type UpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string `json:"address,omitempty"`
}

// Service defines the behavior needed by the suppliers controller.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*SupplierDTO, error)
	Get(ctx context.Context, tenantID, supplierID uuid.UUID) (*SupplierDTO, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]SupplierDTO, error)
	Update(ctx context.Context, tenantID, supplierID uuid.UUID, req UpdateRequest) (*SupplierDTO, error)
	Delete(ctx context.Context, tenantID, supplierID uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, tenantID uuid.UUID, dto CreateSupplierDTO) (*models.Supplier, error)
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]models.Supplier, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, dto UpdateSupplierDTO) (int64, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) (int64, error)
}

type service struct {
	repo repository
}

// NewService constructs a suppliers service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("suppliers repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*SupplierDTO, error) {
	name := strings.TrimSpace(req.Name)
	contact := strings.TrimSpace(req.ContactNumber)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if contact == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "contact_number is required")
	}

	supplier, err := s.repo.Create(ctx, tenantID, CreateSupplierDTO{
		Name:          name,
		ContactNumber: contact,
		Email:         trimOptional(req.Email),
		Address:       trimOptional(req.Address),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create supplier")
	}

	dto := FromModel(supplier)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, tenantID, supplierID uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.repo.FindByID(ctx, tenantID, supplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup supplier")
	}
	dto := FromModel(supplier)
	return &dto, nil
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID) ([]SupplierDTO, error) {
	rows, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list suppliers")
	}

	dtos := make([]SupplierDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, tenantID, supplierID uuid.UUID, req UpdateRequest) (*SupplierDTO, error) {
	dto := UpdateSupplierDTO{
		Email:   trimOptional(req.Email),
		Address: trimOptional(req.Address),
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		dto.Name = &name
	}
	if req.ContactNumber != nil {
		contact := strings.TrimSpace(*req.ContactNumber)
		if contact == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "contact_number cannot be empty")
		}
		dto.ContactNumber = &contact
	}

	if _, err := s.repo.Update(ctx, tenantID, supplierID, dto); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update supplier")
	}
	// Get distinguishes a missing row from a no-op update
	return s.Get(ctx, tenantID, supplierID)
}

func (s *service) Delete(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, tenantID, supplierID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete supplier")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
	}
	return nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
