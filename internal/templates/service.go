package templates

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

// TemplateDTO is the template shape returned by the API.
type TemplateDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModel converts a template row into its API shape.
func FromModel(template *models.MessageTemplate) TemplateDTO {
	return TemplateDTO{
		ID:        template.ID,
		Name:      template.Name,
		Body:      template.Body,
		IsDefault: template.IsDefault,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}

// CreateRequest adds a custom template.
type CreateRequest struct {
	Name string `json:"name" validate:"required"`
	Body string `json:"body" validate:"required"`
}

// UpdateRequest edits a custom template. Absent fields are left unchanged.
type UpdateRequest struct {
	Name *string `json:"name,omitempty"`
	Body *string `json:"body,omitempty"`
}

// Service defines the template operations needed by controllers.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*TemplateDTO, error)
	Get(ctx context.Context, tenantID, templateID uuid.UUID) (*TemplateDTO, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]TemplateDTO, error)
	Update(ctx context.Context, tenantID, templateID uuid.UUID, req UpdateRequest) (*TemplateDTO, error)
	Delete(ctx context.Context, tenantID, templateID uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, template *models.MessageTemplate) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MessageTemplate, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]models.MessageTemplate, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a templates service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("templates repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, tenantID uuid.UUID, req CreateRequest) (*TemplateDTO, error) {
	name := strings.TrimSpace(req.Name)
	body := strings.TrimSpace(req.Body)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if body == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "body is required")
	}

	template := &models.MessageTemplate{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Body:      body,
		IsDefault: false,
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create template")
	}

	dto := FromModel(template)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, tenantID, templateID uuid.UUID) (*TemplateDTO, error) {
	template, err := s.find(ctx, tenantID, templateID)
	if err != nil {
		return nil, err
	}
	dto := FromModel(template)
	return &dto, nil
}

func (s *service) List(ctx context.Context, tenantID uuid.UUID) ([]TemplateDTO, error) {
	rows, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list templates")
	}

	dtos := make([]TemplateDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos, nil
}

// Update edits a custom template. Default templates are immutable.
func (s *service) Update(ctx context.Context, tenantID, templateID uuid.UUID, req UpdateRequest) (*TemplateDTO, error) {
	template, err := s.find(ctx, tenantID, templateID)
	if err != nil {
		return nil, err
	}
	if template.IsDefault {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "default templates cannot be modified")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Body != nil {
		body := strings.TrimSpace(*req.Body)
		if body == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "body cannot be empty")
		}
		updates["body"] = body
	}

	if err := s.repo.Update(ctx, tenantID, templateID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update template")
	}
	return s.Get(ctx, tenantID, templateID)
}

// Delete removes a custom template. Default templates are immutable.
func (s *service) Delete(ctx context.Context, tenantID, templateID uuid.UUID) error {
	template, err := s.find(ctx, tenantID, templateID)
	if err != nil {
		return err
	}
	if template.IsDefault {
		return pkgerrors.New(pkgerrors.CodeForbidden, "default templates cannot be deleted")
	}

	if err := s.repo.Delete(ctx, tenantID, templateID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete template")
	}
	return nil
}

func (s *service) find(ctx context.Context, tenantID, templateID uuid.UUID) (*models.MessageTemplate, error) {
	template, err := s.repo.FindByID(ctx, tenantID, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup template")
	}
	return template, nil
}
