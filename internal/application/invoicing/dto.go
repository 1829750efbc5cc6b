package invoicing

import (
	"time"

	"github.com/fakturo/backend/internal/domain/company"
	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// AddressInput carries raw address fields from the caller
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// CreateCustomerCommand creates a customer within a company
type CreateCustomerCommand struct {
	Name    string
	Address *AddressInput
}

// UpdateCustomerCommand replaces a customer's name and address
type UpdateCustomerCommand struct {
	CustomerID uuid.UUID
	Name       string
	Address    *AddressInput
}

// LineItemInput carries one raw invoice line from the caller. Amounts
// arrive as decimal strings so no precision is lost in transport.
type LineItemInput struct {
	Description string
	Quantity    string
	UnitPrice   string
	Currency    string
	VatRate     string
}

// CreateInvoiceCommand creates a draft invoice with its full line item set
type CreateInvoiceCommand struct {
	CustomerID    uuid.UUID
	BankAccountID *uuid.UUID
	Number        string
	InvoiceDate   time.Time
	PaymentTerms  string
	Currency      string
	LineItems     []LineItemInput
}

// UpdateInvoiceCommand replaces a draft invoice's fields and line items
type UpdateInvoiceCommand struct {
	InvoiceID     uuid.UUID
	CustomerID    uuid.UUID
	BankAccountID *uuid.UUID
	Number        string
	InvoiceDate   time.Time
	PaymentTerms  string
	Currency      string
	LineItems     []LineItemInput
}

// CreateTemplateFromInvoiceCommand snapshots an invoice into a template
type CreateTemplateFromInvoiceCommand struct {
	InvoiceID   uuid.UUID
	Name        string
	Description *string
}

// CreateInvoiceFromTemplateCommand instantiates a template as a new
// draft invoice
type CreateInvoiceFromTemplateCommand struct {
	TemplateID  uuid.UUID
	Number      string
	InvoiceDate time.Time
}

// InvoiceListFilter narrows ListInvoices results
type InvoiceListFilter struct {
	Status     *string
	CustomerID *uuid.UUID
}

// AddressResponse is the outward address representation
type AddressResponse struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// CustomerResponse is the outward customer representation
type CustomerResponse struct {
	ID         uuid.UUID        `json:"id"`
	CompanyID  uuid.UUID        `json:"company_id"`
	Name       string           `json:"name"`
	Address    *AddressResponse `json:"address,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	ArchivedAt *time.Time       `json:"archived_at,omitempty"`
}

// LineItemResponse is the outward line item representation, including
// the derived per-line amounts
type LineItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Currency    string    `json:"currency"`
	VatRate     string    `json:"vat_rate"`
	LineOrder   int       `json:"line_order"`
	Subtotal    string    `json:"subtotal"`
	VatAmount   string    `json:"vat_amount"`
	Total       string    `json:"total"`
}

// TotalsResponse is the derived invoice totals aggregate
type TotalsResponse struct {
	Subtotal   string `json:"subtotal"`
	TotalVat   string `json:"total_vat"`
	GrandTotal string `json:"grand_total"`
	Currency   string `json:"currency"`
}

// InvoiceResponse is the outward invoice representation
type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	CompanyID     uuid.UUID          `json:"company_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	BankAccountID *uuid.UUID         `json:"bank_account_id,omitempty"`
	Number        string             `json:"invoice_number"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       time.Time          `json:"due_date"`
	PaymentTerms  string             `json:"payment_terms"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	PDFPath       *string            `json:"pdf_path,omitempty"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
	Totals        *TotalsResponse    `json:"totals,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	ArchivedAt    *time.Time         `json:"archived_at,omitempty"`
}

// CompanyResponse is the outward company representation
type CompanyResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Address      *AddressResponse `json:"address,omitempty"`
	RegistryCode string           `json:"registry_code,omitempty"`
	VatNumber    string           `json:"vat_number,omitempty"`
}

// BankAccountResponse is the outward bank account representation
type BankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	CompanyID     uuid.UUID `json:"company_id"`
	Name          string    `json:"name"`
	Iban          string    `json:"iban"`
	IbanFormatted string    `json:"iban_formatted"`
	BankDetails   string    `json:"bank_details,omitempty"`
}

// InvoiceDetailsResponse joins an invoice with everything needed to
// render it
type InvoiceDetailsResponse struct {
	Invoice     InvoiceResponse      `json:"invoice"`
	Customer    CustomerResponse     `json:"customer"`
	Company     CompanyResponse      `json:"company"`
	BankAccount *BankAccountResponse `json:"bank_account,omitempty"`
}

// TemplateResponse is the outward template representation
type TemplateResponse struct {
	ID            uuid.UUID          `json:"id"`
	CompanyID     uuid.UUID          `json:"company_id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	BankAccountID *uuid.UUID         `json:"bank_account_id,omitempty"`
	Name          string             `json:"name"`
	Description   *string            `json:"description,omitempty"`
	PaymentTerms  string             `json:"payment_terms"`
	Currency      string             `json:"currency"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	ArchivedAt    *time.Time         `json:"archived_at,omitempty"`
}

// MarkOverdueResponse reports the outcome of an overdue sweep
type MarkOverdueResponse struct {
	MarkedInvoiceIDs []uuid.UUID `json:"marked_invoice_ids"`
}

func toAddressResponse(addr valueobject.Address) *AddressResponse {
	if addr.IsEmpty() {
		return nil
	}
	return &AddressResponse{
		Street:     addr.Street(),
		City:       addr.City(),
		State:      addr.State(),
		PostalCode: addr.PostalCode(),
		Country:    addr.Country(),
	}
}

// ToCustomerResponse maps a customer entity to its response form
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		CompanyID:  c.CompanyID,
		Name:       c.Name.String(),
		Address:    toAddressResponse(c.Address),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		ArchivedAt: c.ArchivedAt,
	}
}

// ToLineItemResponse maps a line item entity to its response form
func ToLineItemResponse(li *domain.InvoiceLineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		Description: li.Description.String(),
		Quantity:    li.Quantity.String(),
		UnitPrice:   li.UnitPrice.Amount().String(),
		Currency:    li.UnitPrice.Currency().String(),
		VatRate:     li.VatRate.Value().String(),
		LineOrder:   li.LineOrder,
		Subtotal:    li.Subtotal().Amount().String(),
		VatAmount:   li.VatAmount().Amount().String(),
		Total:       li.Total().Amount().String(),
	}
}

// ToTotalsResponse maps derived totals to their response form
func ToTotalsResponse(t domain.InvoiceTotals) TotalsResponse {
	return TotalsResponse{
		Subtotal:   t.Subtotal.Amount().String(),
		TotalVat:   t.TotalVat.Amount().String(),
		GrandTotal: t.GrandTotal.Amount().String(),
		Currency:   t.GrandTotal.Currency().String(),
	}
}

// ToInvoiceResponse maps an invoice entity to its response form.
// Line items and totals are attached when provided.
func ToInvoiceResponse(inv *domain.Invoice, items []domain.InvoiceLineItem, totals *domain.InvoiceTotals) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		CustomerID:    inv.CustomerID,
		BankAccountID: inv.BankAccountID,
		Number:        inv.Number.String(),
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		PaymentTerms:  inv.PaymentTerms.String(),
		Currency:      inv.Currency.String(),
		Status:        inv.Status.String(),
		PDFPath:       inv.PDFPath,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
		ArchivedAt:    inv.ArchivedAt,
	}
	for i := range items {
		resp.LineItems = append(resp.LineItems, ToLineItemResponse(&items[i]))
	}
	if totals != nil {
		t := ToTotalsResponse(*totals)
		resp.Totals = &t
	}
	return resp
}

// ToCompanyResponse maps a company entity to its response form
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      toAddressResponse(c.Address),
		RegistryCode: c.RegistryCode,
		VatNumber:    c.VatNumber,
	}
}

// ToBankAccountResponse maps a bank account entity to its response form
func ToBankAccountResponse(b *company.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:            b.ID,
		CompanyID:     b.CompanyID,
		Name:          b.Name.String(),
		Iban:          b.Iban.String(),
		IbanFormatted: b.Iban.Formatted(),
		BankDetails:   b.BankDetails.String(),
	}
}

// ToTemplateResponse maps a template entity to its response form
func ToTemplateResponse(t *domain.InvoiceTemplate, items []domain.InvoiceTemplateLineItem) TemplateResponse {
	resp := TemplateResponse{
		ID:            t.ID,
		CompanyID:     t.CompanyID,
		CustomerID:    t.CustomerID,
		BankAccountID: t.BankAccountID,
		Name:          t.Name.String(),
		Description:   t.Description,
		PaymentTerms:  t.PaymentTerms.String(),
		Currency:      t.Currency.String(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
		ArchivedAt:    t.ArchivedAt,
	}
	for i := range items {
		li := items[i]
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:          li.ID,
			Description: li.Description.String(),
			Quantity:    li.Quantity.String(),
			UnitPrice:   li.UnitPrice.Amount().String(),
			Currency:    li.UnitPrice.Currency().String(),
			VatRate:     li.VatRate.Value().String(),
			LineOrder:   li.LineOrder,
		})
	}
	return resp
}
