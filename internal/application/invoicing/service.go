package invoicing

import (
	"context"
	"errors"
	"time"

	"github.com/fakturo/backend/internal/domain/company"
	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService orchestrates the invoicing context: customers,
// invoices, line items and templates, all scoped to a company. Every
// operation first verifies that the acting user is a member of the
// target company.
type InvoiceService struct {
	customerRepo     domain.CustomerRepository
	invoiceRepo      domain.InvoiceRepository
	lineItemRepo     domain.InvoiceLineItemRepository
	templateRepo     domain.InvoiceTemplateRepository
	templateItemRepo domain.InvoiceTemplateLineItemRepository
	companyRepo      company.CompanyRepository
	memberRepo       company.CompanyMemberRepository
	bankAccountRepo  company.BankAccountRepository
	logger           *zap.Logger
	now              func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	customerRepo domain.CustomerRepository,
	invoiceRepo domain.InvoiceRepository,
	lineItemRepo domain.InvoiceLineItemRepository,
	templateRepo domain.InvoiceTemplateRepository,
	templateItemRepo domain.InvoiceTemplateLineItemRepository,
	companyRepo company.CompanyRepository,
	memberRepo company.CompanyMemberRepository,
	bankAccountRepo company.BankAccountRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		customerRepo:     customerRepo,
		invoiceRepo:      invoiceRepo,
		lineItemRepo:     lineItemRepo,
		templateRepo:     templateRepo,
		templateItemRepo: templateItemRepo,
		companyRepo:      companyRepo,
		memberRepo:       memberRepo,
		bankAccountRepo:  bankAccountRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// verifyMembership checks that the user belongs to the company.
// It runs before any other validation in every operation.
func (s *InvoiceService) verifyMembership(ctx context.Context, userID, companyID uuid.UUID) error {
	_, err := s.memberRepo.FindMember(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return domain.ErrPermissionDenied("User is not a member of this company")
		}
		return err
	}
	return nil
}

// findCompanyCustomer loads a customer and checks it belongs to the
// company. A customer from another company is reported as not found.
func (s *InvoiceService) findCompanyCustomer(ctx context.Context, companyID, customerID uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, domain.ErrCustomerNotFound(customerID)
		}
		return nil, err
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrCustomerNotFound(customerID)
	}
	return customer, nil
}

// findCompanyInvoice loads an invoice and checks it belongs to the company
func (s *InvoiceService) findCompanyInvoice(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, domain.ErrInvoiceNotFound(invoiceID)
		}
		return nil, err
	}
	if invoice.CompanyID != companyID {
		return nil, domain.ErrInvoiceNotFound(invoiceID)
	}
	return invoice, nil
}

// findCompanyTemplate loads a template and checks it belongs to the company
func (s *InvoiceService) findCompanyTemplate(ctx context.Context, companyID, templateID uuid.UUID) (*domain.InvoiceTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, domain.ErrTemplateNotFound(templateID)
		}
		return nil, err
	}
	if template.CompanyID != companyID {
		return nil, domain.ErrTemplateNotFound(templateID)
	}
	return template, nil
}

// findCompanyBankAccount loads a bank account and checks it belongs to
// the company
func (s *InvoiceService) findCompanyBankAccount(ctx context.Context, companyID, accountID uuid.UUID) (*company.BankAccount, error) {
	account, err := s.bankAccountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, domain.ErrBankAccountNotFound(accountID)
		}
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, domain.ErrBankAccountNotFound(accountID)
	}
	return account, nil
}

// parsedLineItem holds a validated line before the owning invoice or
// template exists
type parsedLineItem struct {
	description domain.LineItemDescription
	quantity    valueobject.Quantity
	unitPrice   valueobject.Money
	vatRate     valueobject.VatRate
}

// parseLineItems validates the raw line inputs against the invoice
// currency. The set must be non-empty and every line must use the
// invoice currency; validation happens before anything is written.
func parseLineItems(invoiceCurrency valueobject.Currency, inputs []LineItemInput) ([]parsedLineItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoLineItems()
	}
	parsed := make([]parsedLineItem, 0, len(inputs))
	for _, input := range inputs {
		description, err := domain.NewLineItemDescription(input.Description)
		if err != nil {
			return nil, err
		}
		quantity, err := valueobject.NewQuantityFromString(input.Quantity)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_QUANTITY", err.Error())
		}
		currency, err := valueobject.ParseCurrency(input.Currency)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_CURRENCY", err.Error())
		}
		if currency != invoiceCurrency {
			return nil, domain.ErrCurrencyMismatch(invoiceCurrency, currency)
		}
		unitPrice, err := valueobject.NewMoneyFromString(input.UnitPrice, currency)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_PRICE", err.Error())
		}
		vatRate, err := valueobject.NewVatRateFromString(input.VatRate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_VAT_RATE", err.Error())
		}
		parsed = append(parsed, parsedLineItem{
			description: description,
			quantity:    quantity,
			unitPrice:   unitPrice,
			vatRate:     vatRate,
		})
	}
	return parsed, nil
}

// buildLineItems turns parsed lines into entities with dense 1-based
// line order in input order
func buildLineItems(invoiceID uuid.UUID, parsed []parsedLineItem) ([]domain.InvoiceLineItem, error) {
	items := make([]domain.InvoiceLineItem, 0, len(parsed))
	for i, p := range parsed {
		item, err := domain.NewInvoiceLineItem(invoiceID, p.description, p.quantity, p.unitPrice, p.vatRate, i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// parseAddress converts an optional address input into the value object
func parseAddress(input *AddressInput) (valueobject.Address, error) {
	if input == nil {
		return valueobject.EmptyAddress(), nil
	}
	addr, err := valueobject.NewAddress(input.Street, input.City, input.State, input.PostalCode, input.Country)
	if err != nil {
		return valueobject.Address{}, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	return addr, nil
}
