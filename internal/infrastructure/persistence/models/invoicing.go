package models

import (
	"fmt"
	"time"

	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_customer_company_name,priority:1,where:archived_at IS NULL"`
	Name       string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_customer_company_name,priority:2"`
	Street     string     `gorm:"type:varchar(255)"`
	City       string     `gorm:"type:varchar(255)"`
	State      string     `gorm:"type:varchar(255)"`
	PostalCode string     `gorm:"type:varchar(255)"`
	Country    string     `gorm:"type:varchar(255)"`
	ArchivedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() (*invoicing.Customer, error) {
	name, err := invoicing.NewCustomerName(m.Name)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", m.ID, err)
	}
	address, err := valueobject.NewAddress(m.Street, m.City, m.State, m.PostalCode, m.Country)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", m.ID, err)
	}
	return &invoicing.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		CompanyID:  m.CompanyID,
		Name:       name,
		Address:    address,
		ArchivedAt: m.ArchivedAt,
	}, nil
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *invoicing.Customer) *CustomerModel {
	m := &CustomerModel{
		CompanyID:  c.CompanyID,
		Name:       c.Name.String(),
		Street:     c.Address.Street(),
		City:       c.Address.City(),
		State:      c.Address.State(),
		PostalCode: c.Address.PostalCode(),
		Country:    c.Address.Country(),
		ArchivedAt: c.ArchivedAt,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// InvoiceModel is the persistence model for the Invoice domain entity.
// PaymentTerms are stored in their string form ("net_30", "custom_45")
// and the derived due date is persisted alongside for querying.
type InvoiceModel struct {
	BaseModel
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_invoice_company_number,priority:1"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	BankAccountID *uuid.UUID `gorm:"type:uuid"`
	Number        string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_invoice_company_number,priority:2"`
	InvoiceDate   time.Time  `gorm:"type:date;not null"`
	DueDate       time.Time  `gorm:"type:date;not null;index"`
	PaymentTerms  string     `gorm:"type:varchar(20);not null"`
	Currency      string     `gorm:"type:varchar(3);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	PDFPath       *string    `gorm:"type:text"`
	ArchivedAt    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() (*invoicing.Invoice, error) {
	number, err := invoicing.NewInvoiceNumber(m.Number)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", m.ID, err)
	}
	terms, err := valueobject.ParsePaymentTerms(m.PaymentTerms)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", m.ID, err)
	}
	currency, err := valueobject.ParseCurrency(m.Currency)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", m.ID, err)
	}
	status, err := invoicing.ParseInvoiceStatus(m.Status)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", m.ID, err)
	}
	return &invoicing.Invoice{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyID:     m.CompanyID,
		CustomerID:    m.CustomerID,
		BankAccountID: m.BankAccountID,
		Number:        number,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		PaymentTerms:  terms,
		Currency:      currency,
		Status:        status,
		PDFPath:       m.PDFPath,
		ArchivedAt:    m.ArchivedAt,
	}, nil
}

// InvoiceModelFromDomain creates a persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
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
		ArchivedAt:    inv.ArchivedAt,
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	return m
}

// InvoiceLineItemModel is the persistence model for invoice line items.
// Amounts are stored as exact decimals; the currency column always
// matches the owning invoice's currency.
type InvoiceLineItemModel struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_line_item_invoice_order,priority:1"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	VatRate     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	LineOrder   int             `gorm:"not null;uniqueIndex:idx_line_item_invoice_order,priority:2"`
}

// TableName returns the table name for GORM
func (InvoiceLineItemModel) TableName() string {
	return "invoice_line_items"
}

// ToDomain converts the persistence model to a domain InvoiceLineItem.
func (m *InvoiceLineItemModel) ToDomain() (*invoicing.InvoiceLineItem, error) {
	description, err := invoicing.NewLineItemDescription(m.Description)
	if err != nil {
		return nil, fmt.Errorf("line item %s: %w", m.ID, err)
	}
	quantity, err := valueobject.NewQuantity(m.Quantity)
	if err != nil {
		return nil, fmt.Errorf("line item %s: %w", m.ID, err)
	}
	currency, err := valueobject.ParseCurrency(m.Currency)
	if err != nil {
		return nil, fmt.Errorf("line item %s: %w", m.ID, err)
	}
	unitPrice, err := valueobject.NewMoney(m.UnitPrice, currency)
	if err != nil {
		return nil, fmt.Errorf("line item %s: %w", m.ID, err)
	}
	vatRate, err := valueobject.NewVatRate(m.VatRate)
	if err != nil {
		return nil, fmt.Errorf("line item %s: %w", m.ID, err)
	}
	return &invoicing.InvoiceLineItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		InvoiceID:   m.InvoiceID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VatRate:     vatRate,
		LineOrder:   m.LineOrder,
	}, nil
}

// InvoiceLineItemModelFromDomain creates a persistence model from a domain line item.
func InvoiceLineItemModelFromDomain(li *invoicing.InvoiceLineItem) *InvoiceLineItemModel {
	m := &InvoiceLineItemModel{
		InvoiceID:   li.InvoiceID,
		Description: li.Description.String(),
		Quantity:    li.Quantity.Amount(),
		UnitPrice:   li.UnitPrice.Amount(),
		Currency:    li.UnitPrice.Currency().String(),
		VatRate:     li.VatRate.Value(),
		LineOrder:   li.LineOrder,
	}
	m.FromDomainBaseEntity(li.BaseEntity)
	return m
}

// InvoiceTemplateModel is the persistence model for invoice templates.
type InvoiceTemplateModel struct {
	BaseModel
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_template_company_name,priority:1,where:archived_at IS NULL"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	BankAccountID *uuid.UUID `gorm:"type:uuid"`
	Name          string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_template_company_name,priority:2"`
	Description   *string    `gorm:"type:text"`
	PaymentTerms  string     `gorm:"type:varchar(20);not null"`
	Currency      string     `gorm:"type:varchar(3);not null"`
	ArchivedAt    *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (InvoiceTemplateModel) TableName() string {
	return "invoice_templates"
}

// ToDomain converts the persistence model to a domain InvoiceTemplate.
func (m *InvoiceTemplateModel) ToDomain() (*invoicing.InvoiceTemplate, error) {
	name, err := invoicing.NewTemplateName(m.Name)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", m.ID, err)
	}
	terms, err := valueobject.ParsePaymentTerms(m.PaymentTerms)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", m.ID, err)
	}
	currency, err := valueobject.ParseCurrency(m.Currency)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", m.ID, err)
	}
	return &invoicing.InvoiceTemplate{
		BaseEntity:    m.BaseModel.ToDomain(),
		CompanyID:     m.CompanyID,
		CustomerID:    m.CustomerID,
		BankAccountID: m.BankAccountID,
		Name:          name,
		Description:   m.Description,
		PaymentTerms:  terms,
		Currency:      currency,
		ArchivedAt:    m.ArchivedAt,
	}, nil
}

// InvoiceTemplateModelFromDomain creates a persistence model from a domain template.
func InvoiceTemplateModelFromDomain(tpl *invoicing.InvoiceTemplate) *InvoiceTemplateModel {
	m := &InvoiceTemplateModel{
		CompanyID:     tpl.CompanyID,
		CustomerID:    tpl.CustomerID,
		BankAccountID: tpl.BankAccountID,
		Name:          tpl.Name.String(),
		Description:   tpl.Description,
		PaymentTerms:  tpl.PaymentTerms.String(),
		Currency:      tpl.Currency.String(),
		ArchivedAt:    tpl.ArchivedAt,
	}
	m.FromDomainBaseEntity(tpl.BaseEntity)
	return m
}

// InvoiceTemplateLineItemModel is the persistence model for template line items.
type InvoiceTemplateLineItemModel struct {
	BaseModel
	TemplateID  uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_template_item_order,priority:1"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	VatRate     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	LineOrder   int             `gorm:"not null;uniqueIndex:idx_template_item_order,priority:2"`
}

// TableName returns the table name for GORM
func (InvoiceTemplateLineItemModel) TableName() string {
	return "invoice_template_line_items"
}

// ToDomain converts the persistence model to a domain template line item.
func (m *InvoiceTemplateLineItemModel) ToDomain() (*invoicing.InvoiceTemplateLineItem, error) {
	description, err := invoicing.NewLineItemDescription(m.Description)
	if err != nil {
		return nil, fmt.Errorf("template line item %s: %w", m.ID, err)
	}
	quantity, err := valueobject.NewQuantity(m.Quantity)
	if err != nil {
		return nil, fmt.Errorf("template line item %s: %w", m.ID, err)
	}
	currency, err := valueobject.ParseCurrency(m.Currency)
	if err != nil {
		return nil, fmt.Errorf("template line item %s: %w", m.ID, err)
	}
	unitPrice, err := valueobject.NewMoney(m.UnitPrice, currency)
	if err != nil {
		return nil, fmt.Errorf("template line item %s: %w", m.ID, err)
	}
	vatRate, err := valueobject.NewVatRate(m.VatRate)
	if err != nil {
		return nil, fmt.Errorf("template line item %s: %w", m.ID, err)
	}
	return &invoicing.InvoiceTemplateLineItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		TemplateID:  m.TemplateID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VatRate:     vatRate,
		LineOrder:   m.LineOrder,
	}, nil
}

// InvoiceTemplateLineItemModelFromDomain creates a persistence model from a domain template line item.
func InvoiceTemplateLineItemModelFromDomain(li *invoicing.InvoiceTemplateLineItem) *InvoiceTemplateLineItemModel {
	m := &InvoiceTemplateLineItemModel{
		TemplateID:  li.TemplateID,
		Description: li.Description.String(),
		Quantity:    li.Quantity.Amount(),
		UnitPrice:   li.UnitPrice.Amount(),
		Currency:    li.UnitPrice.Currency().String(),
		VatRate:     li.VatRate.Value(),
		LineOrder:   li.LineOrder,
	}
	m.FromDomainBaseEntity(li.BaseEntity)
	return m
}
