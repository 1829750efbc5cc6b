package invoicing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]Customer, error)
	FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]Customer, error)
	// ExistsByName checks name uniqueness among non-archived customers.
	// excludeID, when set, exempts one customer (used on update).
	ExistsByName(ctx context.Context, companyID uuid.UUID, name CustomerName, excludeID *uuid.UUID) (bool, error)
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]Invoice, error)
	FindByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status InvoiceStatus) ([]Invoice, error)
	FindByCompanyAndCustomer(ctx context.Context, companyID, customerID uuid.UUID) ([]Invoice, error)
	// FindOverdue returns sent invoices whose due date is before asOf
	FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]Invoice, error)
	ExistsByNumber(ctx context.Context, companyID uuid.UUID, number InvoiceNumber, excludeID *uuid.UUID) (bool, error)
}

// InvoiceLineItemRepository defines persistence operations for invoice
// line items
type InvoiceLineItemRepository interface {
	Create(ctx context.Context, item *InvoiceLineItem) error
	CreateMany(ctx context.Context, items []InvoiceLineItem) error
	Update(ctx context.Context, item *InvoiceLineItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
	// ReplaceForInvoice atomically swaps the invoice's full line item
	// set for the given one
	ReplaceForInvoice(ctx context.Context, invoiceID uuid.UUID, items []InvoiceLineItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceLineItem, error)
	FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLineItem, error)
}

// InvoiceTemplateRepository defines persistence operations for invoice
// templates
type InvoiceTemplateRepository interface {
	Create(ctx context.Context, template *InvoiceTemplate) error
	Update(ctx context.Context, template *InvoiceTemplate) error
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceTemplate, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]InvoiceTemplate, error)
	FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]InvoiceTemplate, error)
	ExistsByName(ctx context.Context, companyID uuid.UUID, name TemplateName, excludeID *uuid.UUID) (bool, error)
}

// InvoiceTemplateLineItemRepository defines persistence operations for
// template line items
type InvoiceTemplateLineItemRepository interface {
	CreateMany(ctx context.Context, items []InvoiceTemplateLineItem) error
	DeleteByTemplateID(ctx context.Context, templateID uuid.UUID) error
	FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]InvoiceTemplateLineItem, error)
}
