package invoicing

import (
	"context"
	"time"

	"github.com/fakturo/backend/internal/domain/company"
	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

var _ domain.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name domain.CustomerName, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

var _ domain.InvoiceRepository = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCompanyAndStatus(ctx context.Context, companyID uuid.UUID, status domain.InvoiceStatus) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCompanyAndCustomer(ctx context.Context, companyID, customerID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindOverdue(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, companyID uuid.UUID, number domain.InvoiceNumber, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, number, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockInvoiceLineItemRepository is a mock implementation of
// InvoiceLineItemRepository
type MockInvoiceLineItemRepository struct {
	mock.Mock
}

var _ domain.InvoiceLineItemRepository = (*MockInvoiceLineItemRepository)(nil)

func (m *MockInvoiceLineItemRepository) Create(ctx context.Context, item *domain.InvoiceLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) CreateMany(ctx context.Context, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) Update(ctx context.Context, item *domain.InvoiceLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) ReplaceForInvoice(ctx context.Context, invoiceID uuid.UUID, items []domain.InvoiceLineItem) error {
	args := m.Called(ctx, invoiceID, items)
	return args.Error(0)
}

func (m *MockInvoiceLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceLineItem), args.Error(1)
}

func (m *MockInvoiceLineItemRepository) FindByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceLineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceLineItem), args.Error(1)
}

// MockInvoiceTemplateRepository is a mock implementation of
// InvoiceTemplateRepository
type MockInvoiceTemplateRepository struct {
	mock.Mock
}

var _ domain.InvoiceTemplateRepository = (*MockInvoiceTemplateRepository)(nil)

func (m *MockInvoiceTemplateRepository) Create(ctx context.Context, template *domain.InvoiceTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockInvoiceTemplateRepository) Update(ctx context.Context, template *domain.InvoiceTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockInvoiceTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepository) FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]domain.InvoiceTemplate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplate), args.Error(1)
}

func (m *MockInvoiceTemplateRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name domain.TemplateName, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockInvoiceTemplateLineItemRepository is a mock implementation of
// InvoiceTemplateLineItemRepository
type MockInvoiceTemplateLineItemRepository struct {
	mock.Mock
}

var _ domain.InvoiceTemplateLineItemRepository = (*MockInvoiceTemplateLineItemRepository)(nil)

func (m *MockInvoiceTemplateLineItemRepository) CreateMany(ctx context.Context, items []domain.InvoiceTemplateLineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockInvoiceTemplateLineItemRepository) DeleteByTemplateID(ctx context.Context, templateID uuid.UUID) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

func (m *MockInvoiceTemplateLineItemRepository) FindByTemplateID(ctx context.Context, templateID uuid.UUID) ([]domain.InvoiceTemplateLineItem, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTemplateLineItem), args.Error(1)
}

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

var _ company.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

// MockCompanyMemberRepository is a mock implementation of
// CompanyMemberRepository
type MockCompanyMemberRepository struct {
	mock.Mock
}

var _ company.CompanyMemberRepository = (*MockCompanyMemberRepository)(nil)

func (m *MockCompanyMemberRepository) Create(ctx context.Context, member *company.CompanyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockCompanyMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyMemberRepository) FindMember(ctx context.Context, companyID, userID uuid.UUID) (*company.CompanyMember, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.CompanyMember), args.Error(1)
}

func (m *MockCompanyMemberRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]company.CompanyMember, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.CompanyMember), args.Error(1)
}

// MockBankAccountRepository is a mock implementation of
// BankAccountRepository
type MockBankAccountRepository struct {
	mock.Mock
}

var _ company.BankAccountRepository = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) Create(ctx context.Context, account *company.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Update(ctx context.Context, account *company.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]company.BankAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]company.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ExistsByIban(ctx context.Context, companyID uuid.UUID, iban valueobject.Iban, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, iban, excludeID)
	return args.Bool(0), args.Error(1)
}
