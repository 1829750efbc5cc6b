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

// GormInvoiceLineItemRepository implements invoicing.InvoiceLineItemRepository using GORM
type GormInvoiceLineItemRepository struct {
	db *gorm.DB
}

// NewGormInvoiceLineItemRepository creates a new GormInvoiceLineItemRepository
func NewGormInvoiceLineItemRepository(db *gorm.DB) *GormInvoiceLineItemRepository {
	return &GormInvoiceLineItemRepository{db: db}
}

// Create persists a new line item
func (r *GormInvoiceLineItemRepository) Create(ctx context.Context, item *invoicing.InvoiceLineItem) error {
	model := models.InvoiceLineItemModelFromDomain(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateMany persists a batch of line items
func (r *GormInvoiceLineItemRepository) CreateMany(ctx context.Context, items []invoicing.InvoiceLineItem) error {
	if len(items) == 0 {
		return nil
	}
	itemModels := make([]*models.InvoiceLineItemModel, len(items))
	for i := range items {
		itemModels[i] = models.InvoiceLineItemModelFromDomain(&items[i])
	}
	return r.db.WithContext(ctx).Create(itemModels).Error
}

// Update persists changes to an existing line item
func (r *GormInvoiceLineItemRepository) Update(ctx context.Context, item *invoicing.InvoiceLineItem) error {
	model := models.InvoiceLineItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a line item
func (r *GormInvoiceLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceLineItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByInvoiceID removes all line items of an invoice
func (r *GormInvoiceLineItemRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.InvoiceLineItemModel{}, "invoice_id = ?", invoiceID).Error
}

// ReplaceForInvoice atomically swaps the invoice's full line item set for
// the given one. The delete and insert run in a single transaction so a
// failure leaves the previous set intact.
func (r *GormInvoiceLineItemRepository) ReplaceForInvoice(ctx context.Context, invoiceID uuid.UUID, items []invoicing.InvoiceLineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InvoiceLineItemModel{}, "invoice_id = ?", invoiceID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		itemModels := make([]*models.InvoiceLineItemModel, len(items))
		for i := range items {
			itemModels[i] = models.InvoiceLineItemModelFromDomain(&items[i])
		}
		return tx.Create(itemModels).Error
	})
}

// FindByID finds a line item by its ID
func (r *GormInvoiceLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.InvoiceLineItem, error) {
	var model models.InvoiceLineItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByInvoiceID finds all line items of an invoice in display order
func (r *GormInvoiceLineItemRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]invoicing.InvoiceLineItem, error) {
	var itemModels []models.InvoiceLineItemModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("line_order ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]invoicing.InvoiceLineItem, len(itemModels))
	for i := range itemModels {
		item, err := itemModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		items[i] = *item
	}
	return items, nil
}

// Ensure GormInvoiceLineItemRepository implements InvoiceLineItemRepository
var _ invoicing.InvoiceLineItemRepository = (*GormInvoiceLineItemRepository)(nil)
