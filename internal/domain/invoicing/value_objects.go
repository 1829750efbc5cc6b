package invoicing

import (
	"strings"

	"github.com/fakturo/backend/internal/domain/shared"
)

// InvoiceNumber is the human-facing invoice identifier.
// Trimmed, 1-100 characters; no particular format is enforced.
type InvoiceNumber string

// NewInvoiceNumber validates and normalizes an invoice number
func NewInvoiceNumber(value string) (InvoiceNumber, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if len(trimmed) > 100 {
		return "", shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 100 characters")
	}
	return InvoiceNumber(trimmed), nil
}

// String returns the invoice number as a string
func (n InvoiceNumber) String() string {
	return string(n)
}

// LineItemDescription describes a single invoice line.
// Trimmed, 1-500 characters.
type LineItemDescription string

// NewLineItemDescription validates and normalizes a line item description
func NewLineItemDescription(value string) (LineItemDescription, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
	}
	if len(trimmed) > 500 {
		return "", shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot exceed 500 characters")
	}
	return LineItemDescription(trimmed), nil
}

// String returns the description as a string
func (d LineItemDescription) String() string {
	return string(d)
}

// CustomerName is a customer's display name. Trimmed, 1-255 characters.
type CustomerName string

// NewCustomerName validates and normalizes a customer name
func NewCustomerName(value string) (CustomerName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(trimmed) > 255 {
		return "", shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 255 characters")
	}
	return CustomerName(trimmed), nil
}

// String returns the name as a string
func (n CustomerName) String() string {
	return string(n)
}

// TemplateName identifies an invoice template within a company.
// Trimmed, 1-255 characters.
type TemplateName string

// NewTemplateName validates and normalizes a template name
func NewTemplateName(value string) (TemplateName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_TEMPLATE_NAME", "Template name cannot be empty")
	}
	if len(trimmed) > 255 {
		return "", shared.NewDomainError("INVALID_TEMPLATE_NAME", "Template name cannot exceed 255 characters")
	}
	return TemplateName(trimmed), nil
}

// String returns the name as a string
func (n TemplateName) String() string {
	return string(n)
}
