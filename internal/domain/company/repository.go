package company

import (
	"context"

	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
}

// CompanyMemberRepository defines persistence operations for company
// memberships
type CompanyMemberRepository interface {
	Create(ctx context.Context, member *CompanyMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindMember returns the membership linking the user to the
	// company, or a not-found error
	FindMember(ctx context.Context, companyID, userID uuid.UUID) (*CompanyMember, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]CompanyMember, error)
}

// BankAccountRepository defines persistence operations for bank accounts
type BankAccountRepository interface {
	Create(ctx context.Context, account *BankAccount) error
	Update(ctx context.Context, account *BankAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]BankAccount, error)
	// ExistsByIban checks IBAN uniqueness within a company
	ExistsByIban(ctx context.Context, companyID uuid.UUID, iban valueobject.Iban, excludeID *uuid.UUID) (bool, error)
}
