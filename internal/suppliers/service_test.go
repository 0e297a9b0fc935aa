package suppliers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

type fakeRepo struct {
	rows map[uuid.UUID]*models.Supplier
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*models.Supplier{}}
}

func (f *fakeRepo) Create(ctx context.Context, tenantID uuid.UUID, dto CreateSupplierDTO) (*models.Supplier, error) {
	supplier := &models.Supplier{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Name:          dto.Name,
		ContactNumber: dto.ContactNumber,
		Email:         dto.Email,
		Address:       dto.Address,
	}
	f.rows[supplier.ID] = supplier
	return supplier, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	supplier, ok := f.rows[id]
	if !ok || supplier.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	return supplier, nil
}

func (f *fakeRepo) List(ctx context.Context, tenantID uuid.UUID) ([]models.Supplier, error) {
	var out []models.Supplier
	for _, supplier := range f.rows {
		if supplier.TenantID == tenantID {
			out = append(out, *supplier)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, tenantID, id uuid.UUID, dto UpdateSupplierDTO) (int64, error) {
	supplier, ok := f.rows[id]
	if !ok || supplier.TenantID != tenantID {
		return 0, nil
	}
	if dto.Name != nil {
		supplier.Name = *dto.Name
	}
	if dto.ContactNumber != nil {
		supplier.ContactNumber = *dto.ContactNumber
	}
	if dto.Email != nil {
		supplier.Email = dto.Email
	}
	if dto.Address != nil {
		supplier.Address = dto.Address
	}
	return 1, nil
}

func (f *fakeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) (int64, error) {
	supplier, ok := f.rows[id]
	if !ok || supplier.TenantID != tenantID {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo
}

func TestCreateRequiresNameAndContact(t *testing.T) {
	svc, _ := newTestService(t)
	tenantID := uuid.New()

	_, err := svc.Create(context.Background(), tenantID, CreateRequest{ContactNumber: "123"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}

	_, err = svc.Create(context.Background(), tenantID, CreateRequest{Name: "Acme"})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing contact, got %v", err)
	}
}

func TestCreateTrimsAndStores(t *testing.T) {
	svc, _ := newTestService(t)
	tenantID := uuid.New()

	dto, err := svc.Create(context.Background(), tenantID, CreateRequest{
		Name:          "  Acme Traders  ",
		ContactNumber: " +919876543210 ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Acme Traders" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.ContactNumber != "+919876543210" {
		t.Fatalf("expected trimmed contact, got %q", dto.ContactNumber)
	}
}

func TestGetEnforcesTenantScope(t *testing.T) {
	svc, _ := newTestService(t)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, CreateRequest{
		Name:          "Acme",
		ContactNumber: "123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	_, err = svc.Get(context.Background(), intruder, created.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for cross-tenant read, got %v", err)
	}
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	tenantID := uuid.New()

	created, err := svc.Create(context.Background(), tenantID, CreateRequest{
		Name:          "Acme",
		ContactNumber: "123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := "   "
	_, err = svc.Update(context.Background(), tenantID, created.ID, UpdateRequest{Name: &empty})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
