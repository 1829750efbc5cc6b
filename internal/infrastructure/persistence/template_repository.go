package persistence

import (
	"context"
	"errors"

	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceTemplateRepository implements invoicing.InvoiceTemplateRepository using GORM
type GormInvoiceTemplateRepository struct {
	db *gorm.DB
}

// NewGormInvoiceTemplateRepository creates a new GormInvoiceTemplateRepository
func NewGormInvoiceTemplateRepository(db *gorm.DB) *GormInvoiceTemplateRepository {
	return &GormInvoiceTemplateRepository{db: db}
}

// Create persists a new template
func (r *GormInvoiceTemplateRepository) Create(ctx context.Context, template *invoicing.InvoiceTemplate) error {
	model := models.InvoiceTemplateModelFromDomain(template)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err, "idx_template_company_name") {
			return invoicing.ErrTemplateNameExists(template.Name)
		}
		return err
	}
	return nil
}

// Update persists changes to an existing template
func (r *GormInvoiceTemplateRepository) Update(ctx context.Context, template *invoicing.InvoiceTemplate) error {
	model := models.InvoiceTemplateModelFromDomain(template)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err, "idx_template_company_name") {
			return invoicing.ErrTemplateNameExists(template.Name)
		}
		return err
	}
	return nil
}

// FindByID finds a template by its ID
func (r *GormInvoiceTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.InvoiceTemplate, error) {
	var model models.InvoiceTemplateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByCompanyID finds all templates belonging to a company, archived included
func (r *GormInvoiceTemplateRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]invoicing.InvoiceTemplate, error) {
	var templateModels []models.InvoiceTemplateModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, err
	}
	return templatesToDomain(templateModels)
}

// FindActiveByCompanyID finds all non-archived templates belonging to a company
func (r *GormInvoiceTemplateRepository) FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]invoicing.InvoiceTemplate, error) {
	var templateModels []models.InvoiceTemplateModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND archived_at IS NULL", companyID).
		Order("name ASC").
		Find(&templateModels).Error; err != nil {
		return nil, err
	}
	return templatesToDomain(templateModels)
}

func templatesToDomain(templateModels []models.InvoiceTemplateModel) ([]invoicing.InvoiceTemplate, error) {
	templates := make([]invoicing.InvoiceTemplate, len(templateModels))
	for i := range templateModels {
		template, err := templateModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		templates[i] = *template
	}
	return templates, nil
}

// ExistsByName checks template name uniqueness among non-archived templates
func (r *GormInvoiceTemplateRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name invoicing.TemplateName, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceTemplateModel{}).
		Where("company_id = ? AND name = ? AND archived_at IS NULL", companyID, name.String())
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormInvoiceTemplateRepository implements InvoiceTemplateRepository
var _ invoicing.InvoiceTemplateRepository = (*GormInvoiceTemplateRepository)(nil)

// GormInvoiceTemplateLineItemRepository implements
// invoicing.InvoiceTemplateLineItemRepository using GORM
type GormInvoiceTemplateLineItemRepository struct {
	db *gorm.DB
}

// NewGormInvoiceTemplateLineItemRepository creates a new GormInvoiceTemplateLineItemRepository
func NewGormInvoiceTemplateLineItemRepository(db *gorm.DB) *GormInvoiceTemplateLineItemRepository {
	return &GormInvoiceTemplateLineItemRepository{db: db}
}

// CreateMany persists a batch of template line items
func (r *GormInvoiceTemplateLineItemRepository) CreateMany(ctx context.Context, items []invoicing.InvoiceTemplateLineItem) error {
	if len(items) == 0 {
		return nil
	}
	itemModels := make([]*models.InvoiceTemplateLineItemModel, len(items))
	for i := range items {
		itemModels[i] = models.InvoiceTemplateLineItemModelFromDomain(&items[i])
	}
	return r.db.WithContext(ctx).Create(itemModels).Error
}

// DeleteByTemplateID removes all line items of a template
func (r *GormInvoiceTemplateLineItemRepository) DeleteByTemplateID(ctx context.Context, templateID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.InvoiceTemplateLineItemModel{}, "template_id = ?", templateID).Error
}

// FindByTemplateID finds all line items of a template in display order
func (r *GormInvoiceTemplateLineItemRepository) FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]invoicing.InvoiceTemplateLineItem, error) {
	var itemModels []models.InvoiceTemplateLineItemModel
	if err := r.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Order("line_order ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]invoicing.InvoiceTemplateLineItem, len(itemModels))
	for i := range itemModels {
		item, err := itemModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		items[i] = *item
	}
	return items, nil
}

// Ensure GormInvoiceTemplateLineItemRepository implements InvoiceTemplateLineItemRepository
var _ invoicing.InvoiceTemplateLineItemRepository = (*GormInvoiceTemplateLineItemRepository)(nil)
