package invoicing

import (
	"context"

	domain "github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/google/uuid"
)

// CreateCustomer creates a customer within the company. The name must
// be unique among the company's non-archived customers.
func (s *InvoiceService) CreateCustomer(ctx context.Context, userID, companyID uuid.UUID, cmd CreateCustomerCommand) (*CustomerResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	name, err := domain.NewCustomerName(cmd.Name)
	if err != nil {
		return nil, err
	}
	address, err := parseAddress(cmd.Address)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByName(ctx, companyID, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCustomerNameExists(name)
	}

	customer := domain.NewCustomer(companyID, name, address)
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// UpdateCustomer replaces a customer's name and address. The uniqueness
// check exempts the customer itself.
func (s *InvoiceService) UpdateCustomer(ctx context.Context, userID, companyID uuid.UUID, cmd UpdateCustomerCommand) (*CustomerResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	customer, err := s.findCompanyCustomer(ctx, companyID, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewCustomerName(cmd.Name)
	if err != nil {
		return nil, err
	}
	address, err := parseAddress(cmd.Address)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByName(ctx, companyID, name, &cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCustomerNameExists(name)
	}

	customer.Update(name, address)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// ArchiveCustomer soft-flags a customer. Archiving twice is a no-op;
// the customer's invoices are untouched.
func (s *InvoiceService) ArchiveCustomer(ctx context.Context, userID, companyID, customerID uuid.UUID) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	customer, err := s.findCompanyCustomer(ctx, companyID, customerID)
	if err != nil {
		return err
	}
	if customer.IsArchived() {
		return nil
	}

	customer.Archive()
	return s.customerRepo.Update(ctx, customer)
}

// GetCustomer returns one customer of the company
func (s *InvoiceService) GetCustomer(ctx context.Context, userID, companyID, customerID uuid.UUID) (*CustomerResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	customer, err := s.findCompanyCustomer(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// ListCustomers returns the company's customers, optionally including
// archived ones
func (s *InvoiceService) ListCustomers(ctx context.Context, userID, companyID uuid.UUID, includeArchived bool) ([]CustomerResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	var customers []domain.Customer
	var err error
	if includeArchived {
		customers, err = s.customerRepo.FindByCompanyID(ctx, companyID)
	} else {
		customers, err = s.customerRepo.FindActiveByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses, nil
}
