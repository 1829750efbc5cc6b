package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create persists a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err, "idx_invoice_company_number") {
			return invoicing.ErrInvoiceNumberExists(invoice.Number)
		}
		return err
	}
	return nil
}

// Update persists changes to an existing invoice
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err, "idx_invoice_company_number") {
			return invoicing.ErrInvoiceNumberExists(invoice.Number)
		}
		return err
	}
	return nil
}

// Delete removes an invoice
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByCompanyID finds all invoices belonging to a company
func (r *GormInvoiceRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("invoice_date DESC, number DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(invoiceModels)
}

// FindByCompanyAndStatus finds a company's invoices in the given status
func (r *GormInvoiceRepository) FindByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status invoicing.InvoiceStatus) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, status.String()).
		Order("invoice_date DESC, number DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(invoiceModels)
}

// FindByCompanyAndCustomer finds a company's invoices for one customer
func (r *GormInvoiceRepository) FindByCompanyAndCustomer(ctx context.Context, companyID, customerID uuid.UUID) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND customer_id = ?", companyID, customerID).
		Order("invoice_date DESC, number DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(invoiceModels)
}

// FindOverdue returns sent invoices whose due date is strictly before asOf
func (r *GormInvoiceRepository) FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ? AND due_date < ?", companyID, invoicing.InvoiceStatusSent.String(), asOf).
		Order("due_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(invoiceModels)
}

// ExistsByNumber checks invoice number uniqueness within a company
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, number invoicing.InvoiceNumber, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("company_id = ? AND number = ?", companyID, number.String())
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func invoicesToDomain(invoiceModels []models.InvoiceModel) ([]invoicing.Invoice, error) {
	invoices := make([]invoicing.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoice, err := invoiceModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		invoices[i] = *invoice
	}
	return invoices, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
