package templates

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ravikiranj/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/ravikiranj/stocktrail-backend/pkg/errors"
)

type fakeRepo struct {
	rows map[uuid.UUID]*models.MessageTemplate
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*models.MessageTemplate{}}
}

func (f *fakeRepo) Create(ctx context.Context, template *models.MessageTemplate) error {
	f.rows[template.ID] = template
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MessageTemplate, error) {
	template, ok := f.rows[id]
	if !ok || template.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	return template, nil
}

func (f *fakeRepo) List(ctx context.Context, tenantID uuid.UUID) ([]models.MessageTemplate, error) {
	var out []models.MessageTemplate
	for _, template := range f.rows {
		if template.TenantID == tenantID {
			out = append(out, *template)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) error {
	template, ok := f.rows[id]
	if !ok || template.TenantID != tenantID {
		return nil
	}
	if name, ok := updates["name"].(string); ok {
		template.Name = name
	}
	if body, ok := updates["body"].(string); ok {
		template.Body = body
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
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

func seedDefault(repo *fakeRepo, tenantID uuid.UUID) *models.MessageTemplate {
	template := &models.MessageTemplate{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      "Professional Reorder",
		Body:      "Hello {supplier_name}",
		IsDefault: true,
	}
	repo.rows[template.ID] = template
	return template
}

func TestUpdateDefaultIsForbidden(t *testing.T) {
	svc, repo := newTestService(t)
	tenantID := uuid.New()
	template := seedDefault(repo, tenantID)

	name := "Renamed"
	_, err := svc.Update(context.Background(), tenantID, template.ID, UpdateRequest{Name: &name})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if template.Name != "Professional Reorder" {
		t.Fatalf("default template was modified")
	}
}

func TestDeleteDefaultIsForbidden(t *testing.T) {
	svc, repo := newTestService(t)
	tenantID := uuid.New()
	template := seedDefault(repo, tenantID)

	err := svc.Delete(context.Background(), tenantID, template.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, ok := repo.rows[template.ID]; !ok {
		t.Fatalf("default template was deleted")
	}
}

func TestCustomTemplateLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	tenantID := uuid.New()

	created, err := svc.Create(context.Background(), tenantID, CreateRequest{
		Name: "My Template",
		Body: "Need stock for {supplier_name}: {items_list}",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsDefault {
		t.Fatalf("custom templates must not be default")
	}

	body := "Updated body {items_list}"
	updated, err := svc.Update(context.Background(), tenantID, created.ID, UpdateRequest{Body: &body})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Body != body {
		t.Fatalf("expected body to change, got %q", updated.Body)
	}

	if err := svc.Delete(context.Background(), tenantID, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(context.Background(), tenantID, created.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestGetCrossTenantIsNotFound(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	template := seedDefault(repo, owner)

	_, err := svc.Get(context.Background(), uuid.New(), template.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for cross-tenant read, got %v", err)
	}
}
