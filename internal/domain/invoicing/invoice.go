package invoicing

import (
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Invoice is the aggregate root of the invoicing context. The due date
// is always derived from the invoice date and payment terms; it is
// never set directly.
type Invoice struct {
	shared.BaseEntity
	CompanyID     uuid.UUID
	CustomerID    uuid.UUID
	BankAccountID *uuid.UUID
	Number        InvoiceNumber
	InvoiceDate   time.Time
	DueDate       time.Time
	PaymentTerms  valueobject.PaymentTerms
	Currency      valueobject.Currency
	Status        InvoiceStatus
	PDFPath       *string
	ArchivedAt    *time.Time
}

// NewInvoice creates a draft invoice with a derived due date
func NewInvoice(companyID, customerID uuid.UUID, bankAccountID *uuid.UUID, number InvoiceNumber, invoiceDate time.Time, terms valueobject.PaymentTerms, currency valueobject.Currency) *Invoice {
	return &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		CompanyID:     companyID,
		CustomerID:    customerID,
		BankAccountID: bankAccountID,
		Number:        number,
		InvoiceDate:   dateOnly(invoiceDate),
		DueDate:       deriveDueDate(invoiceDate, terms),
		PaymentTerms:  terms,
		Currency:      currency,
		Status:        InvoiceStatusDraft,
	}
}

// Update replaces the invoice's editable fields and re-derives the due
// date. Only draft invoices may be updated.
func (i *Invoice) Update(customerID uuid.UUID, bankAccountID *uuid.UUID, number InvoiceNumber, invoiceDate time.Time, terms valueobject.PaymentTerms, currency valueobject.Currency) error {
	if !i.Status.IsEditable() {
		return ErrCannotEditInvoice(i.Status)
	}
	i.CustomerID = customerID
	i.BankAccountID = bankAccountID
	i.Number = number
	i.InvoiceDate = dateOnly(invoiceDate)
	i.DueDate = deriveDueDate(invoiceDate, terms)
	i.PaymentTerms = terms
	i.Currency = currency
	i.UpdatedAt = time.Now()
	return nil
}

// ChangeStatus moves the invoice through its lifecycle, rejecting any
// transition the state machine does not allow
func (i *Invoice) ChangeStatus(target InvoiceStatus) error {
	if !i.Status.CanTransitionTo(target) {
		return ErrInvalidStatusTransition(i.Status, target)
	}
	i.Status = target
	i.UpdatedAt = time.Now()
	return nil
}

// IsEditable returns true if the invoice content may still change
func (i *Invoice) IsEditable() bool {
	return i.Status.IsEditable()
}

// IsOverdue reports whether the invoice is past due as of the given
// date. This is a point-in-time query on sent invoices; it is distinct
// from the stored overdue status, which only changes when a transition
// is applied.
func (i *Invoice) IsOverdue(today time.Time) bool {
	return i.Status == InvoiceStatusSent && dateOnly(i.DueDate).Before(dateOnly(today))
}

// Archive soft-flags the invoice. Archiving an already archived
// invoice is a no-op.
func (i *Invoice) Archive() {
	if i.ArchivedAt != nil {
		return
	}
	now := time.Now()
	i.ArchivedAt = &now
	i.UpdatedAt = now
}

// IsArchived returns true if the invoice has been archived
func (i *Invoice) IsArchived() bool {
	return i.ArchivedAt != nil
}

// SetPDFPath records where the rendered document is stored
func (i *Invoice) SetPDFPath(path string) {
	i.PDFPath = &path
	i.UpdatedAt = time.Now()
}

// deriveDueDate adds the payment terms to the invoice date
func deriveDueDate(invoiceDate time.Time, terms valueobject.PaymentTerms) time.Time {
	return dateOnly(invoiceDate).AddDate(0, 0, terms.Days())
}

// dateOnly truncates a timestamp to midnight UTC
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InvoiceLineItem is a single billed line on an invoice. Line items are
// always replaced as a whole set; LineOrder is dense and 1-based.
type InvoiceLineItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID
	Description LineItemDescription
	Quantity    valueobject.Quantity
	UnitPrice   valueobject.Money
	VatRate     valueobject.VatRate
	LineOrder   int
}

// NewInvoiceLineItem creates a line item for an invoice
func NewInvoiceLineItem(invoiceID uuid.UUID, description LineItemDescription, quantity valueobject.Quantity, unitPrice valueobject.Money, vatRate valueobject.VatRate, lineOrder int) (*InvoiceLineItem, error) {
	if lineOrder < 1 {
		return nil, ErrInvalidLineItemOrder()
	}
	return &InvoiceLineItem{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   invoiceID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VatRate:     vatRate,
		LineOrder:   lineOrder,
	}, nil
}

// Subtotal returns unit price times quantity
func (li *InvoiceLineItem) Subtotal() valueobject.Money {
	return li.UnitPrice.Multiply(li.Quantity.Amount())
}

// VatAmount returns the VAT due on the subtotal
func (li *InvoiceLineItem) VatAmount() valueobject.Money {
	return li.Subtotal().Multiply(li.VatRate.Multiplier())
}

// Total returns subtotal plus VAT
func (li *InvoiceLineItem) Total() valueobject.Money {
	return li.Subtotal().MustAdd(li.VatAmount())
}

// InvoiceTotals is a derived aggregate over an invoice's line items.
// It is computed on every read and never persisted.
type InvoiceTotals struct {
	Subtotal   valueobject.Money
	TotalVat   valueobject.Money
	GrandTotal valueobject.Money
}

// CalculateTotals folds line item amounts starting from zero in the
// invoice currency. A line item in any other currency is an error.
func CalculateTotals(currency valueobject.Currency, items []InvoiceLineItem) (InvoiceTotals, error) {
	subtotal := valueobject.Zero(currency)
	totalVat := valueobject.Zero(currency)
	for _, item := range items {
		if item.UnitPrice.Currency() != currency {
			return InvoiceTotals{}, ErrCurrencyMismatch(currency, item.UnitPrice.Currency())
		}
		subtotal = subtotal.MustAdd(item.Subtotal())
		totalVat = totalVat.MustAdd(item.VatAmount())
	}
	return InvoiceTotals{
		Subtotal:   subtotal,
		TotalVat:   totalVat,
		GrandTotal: subtotal.MustAdd(totalVat),
	}, nil
}

// ValidateLineOrder checks that line orders are exactly 1..N in the
// order given
func ValidateLineOrder(items []InvoiceLineItem) error {
	for idx, item := range items {
		if item.LineOrder != idx+1 {
			return ErrInvalidLineItemOrder()
		}
	}
	return nil
}
