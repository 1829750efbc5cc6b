package invoicing

import (
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// InvoiceTemplate is a reusable invoice outline: everything an invoice
// carries except its number, date and lifecycle status.
type InvoiceTemplate struct {
	shared.BaseEntity
	CompanyID     uuid.UUID
	CustomerID    uuid.UUID
	BankAccountID *uuid.UUID
	Name          TemplateName
	Description   *string
	PaymentTerms  valueobject.PaymentTerms
	Currency      valueobject.Currency
	ArchivedAt    *time.Time
}

// NewInvoiceTemplate creates a new invoice template
func NewInvoiceTemplate(companyID, customerID uuid.UUID, bankAccountID *uuid.UUID, name TemplateName, description *string, terms valueobject.PaymentTerms, currency valueobject.Currency) *InvoiceTemplate {
	return &InvoiceTemplate{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     companyID,
		CustomerID:    customerID,
		BankAccountID: bankAccountID,
		Name:          name,
		Description:   description,
		PaymentTerms:  terms,
		Currency:      currency,
	}
}

// Archive soft-flags the template. Idempotent.
func (t *InvoiceTemplate) Archive() {
	if t.ArchivedAt != nil {
		return
	}
	now := time.Now()
	t.ArchivedAt = &now
	t.UpdatedAt = now
}

// IsArchived returns true if the template has been archived
func (t *InvoiceTemplate) IsArchived() bool {
	return t.ArchivedAt != nil
}

// InvoiceTemplateLineItem is a line on an invoice template
type InvoiceTemplateLineItem struct {
	shared.BaseEntity
	TemplateID  uuid.UUID
	Description LineItemDescription
	Quantity    valueobject.Quantity
	UnitPrice   valueobject.Money
	VatRate     valueobject.VatRate
	LineOrder   int
}

// NewInvoiceTemplateLineItem creates a template line item
func NewInvoiceTemplateLineItem(templateID uuid.UUID, description LineItemDescription, quantity valueobject.Quantity, unitPrice valueobject.Money, vatRate valueobject.VatRate, lineOrder int) (*InvoiceTemplateLineItem, error) {
	if lineOrder < 1 {
		return nil, ErrInvalidLineItemOrder()
	}
	return &InvoiceTemplateLineItem{
		BaseEntity:  shared.NewBaseEntity(),
		TemplateID:  templateID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VatRate:     vatRate,
		LineOrder:   lineOrder,
	}, nil
}
