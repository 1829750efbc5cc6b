package invoicing

import (
	"context"

	"github.com/fakturo/backend/internal/domain/company"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CreateBankAccountCommand creates a bank account for a company
type CreateBankAccountCommand struct {
	Name        string
	Iban        string
	BankDetails string
}

// CreateBankAccount registers a company bank account. The IBAN must be
// unique within the company.
func (s *InvoiceService) CreateBankAccount(ctx context.Context, userID, companyID uuid.UUID, cmd CreateBankAccountCommand) (*BankAccountResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	name, err := company.NewBankAccountName(cmd.Name)
	if err != nil {
		return nil, err
	}
	iban, err := valueobject.NewIban(cmd.Iban)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_IBAN", err.Error())
	}
	details, err := company.NewBankDetails(cmd.BankDetails)
	if err != nil {
		return nil, err
	}

	exists, err := s.bankAccountRepo.ExistsByIban(ctx, companyID, iban, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("BANK_ACCOUNT_EXISTS", "A bank account with this IBAN already exists")
	}

	account := company.NewBankAccount(companyID, name, iban, details)
	if err := s.bankAccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	resp := ToBankAccountResponse(account)
	return &resp, nil
}

// ListBankAccounts returns the company's bank accounts
func (s *InvoiceService) ListBankAccounts(ctx context.Context, userID, companyID uuid.UUID) ([]BankAccountResponse, error) {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return nil, err
	}

	accounts, err := s.bankAccountRepo.FindByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]BankAccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, ToBankAccountResponse(&accounts[i]))
	}
	return responses, nil
}

// ArchiveBankAccount soft-flags a bank account. Idempotent. Existing
// invoices keep their reference.
func (s *InvoiceService) ArchiveBankAccount(ctx context.Context, userID, companyID, accountID uuid.UUID) error {
	if err := s.verifyMembership(ctx, userID, companyID); err != nil {
		return err
	}

	account, err := s.findCompanyBankAccount(ctx, companyID, accountID)
	if err != nil {
		return err
	}
	if account.IsArchived() {
		return nil
	}

	account.Archive()
	return s.bankAccountRepo.Update(ctx, account)
}
