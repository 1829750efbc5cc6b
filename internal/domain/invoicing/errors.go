package invoicing

import (
	"fmt"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Error codes for the invoicing context. HTTP handlers map these to
// response statuses.
const (
	ErrCodeCustomerNotFound        = "CUSTOMER_NOT_FOUND"
	ErrCodeInvoiceNotFound         = "INVOICE_NOT_FOUND"
	ErrCodeLineItemNotFound        = "LINE_ITEM_NOT_FOUND"
	ErrCodeTemplateNotFound        = "TEMPLATE_NOT_FOUND"
	ErrCodeBankAccountNotFound     = "BANK_ACCOUNT_NOT_FOUND"
	ErrCodeCustomerNameExists      = "CUSTOMER_NAME_EXISTS"
	ErrCodeInvoiceNumberExists     = "INVOICE_NUMBER_EXISTS"
	ErrCodeTemplateNameExists      = "TEMPLATE_NAME_EXISTS"
	ErrCodeCannotEditInvoice       = "CANNOT_EDIT_INVOICE"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	ErrCodePermissionDenied        = "PERMISSION_DENIED"
	ErrCodeCurrencyMismatch        = "CURRENCY_MISMATCH"
	ErrCodeNoLineItems             = "NO_LINE_ITEMS"
	ErrCodeInvalidLineItemOrder    = "INVALID_LINE_ITEM_ORDER"
)

// ErrCustomerNotFound reports a missing customer by id
func ErrCustomerNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCustomerNotFound, fmt.Sprintf("Customer %s not found", id))
}

// ErrInvoiceNotFound reports a missing invoice by id
func ErrInvoiceNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvoiceNotFound, fmt.Sprintf("Invoice %s not found", id))
}

// ErrLineItemNotFound reports a missing line item by id
func ErrLineItemNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeLineItemNotFound, fmt.Sprintf("Invoice line item %s not found", id))
}

// ErrTemplateNotFound reports a missing template by id
func ErrTemplateNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeTemplateNotFound, fmt.Sprintf("Invoice template %s not found", id))
}

// ErrBankAccountNotFound reports a missing bank account by id
func ErrBankAccountNotFound(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeBankAccountNotFound, fmt.Sprintf("Bank account %s not found", id))
}

// ErrCustomerNameExists reports a duplicate customer name within a company
func ErrCustomerNameExists(name CustomerName) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCustomerNameExists, fmt.Sprintf("A customer named %q already exists", name))
}

// ErrInvoiceNumberExists reports a duplicate invoice number within a company
func ErrInvoiceNumberExists(number InvoiceNumber) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvoiceNumberExists, fmt.Sprintf("Invoice number %q already exists", number))
}

// ErrTemplateNameExists reports a duplicate template name within a company
func ErrTemplateNameExists(name TemplateName) *shared.DomainError {
	return shared.NewDomainError(ErrCodeTemplateNameExists, fmt.Sprintf("A template named %q already exists", name))
}

// ErrCannotEditInvoice reports an edit attempt on a non-draft invoice
func ErrCannotEditInvoice(status InvoiceStatus) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCannotEditInvoice, fmt.Sprintf("Invoice in status %s cannot be edited", status))
}

// ErrInvalidStatusTransition reports a disallowed lifecycle transition,
// naming both states
func ErrInvalidStatusTransition(from, to InvoiceStatus) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidStatusTransition, fmt.Sprintf("Cannot transition invoice from %s to %s", from, to))
}

// ErrPermissionDenied reports that the acting user is not a member of
// the target company
func ErrPermissionDenied(reason string) *shared.DomainError {
	return shared.NewDomainError(ErrCodePermissionDenied, reason)
}

// ErrCurrencyMismatch reports a line item whose currency differs from
// the invoice currency
func ErrCurrencyMismatch(expected, actual valueobject.Currency) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCurrencyMismatch, fmt.Sprintf("Line item currency %s does not match invoice currency %s", actual, expected))
}

// ErrNoLineItems reports an invoice or template with an empty line item set
func ErrNoLineItems() *shared.DomainError {
	return shared.NewDomainError(ErrCodeNoLineItems, "An invoice must have at least one line item")
}

// ErrInvalidLineItemOrder reports a line item set whose ordering is not
// dense and 1-based
func ErrInvalidLineItemOrder() *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidLineItemOrder, "Line item order must be contiguous starting at 1")
}
