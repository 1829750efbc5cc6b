package company

import (
	"strings"
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BankAccountName labels a bank account. Trimmed, 1-255 characters.
type BankAccountName string

// NewBankAccountName validates and normalizes a bank account name
func NewBankAccountName(value string) (BankAccountName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_BANK_ACCOUNT_NAME", "Bank account name cannot be empty")
	}
	if len(trimmed) > 255 {
		return "", shared.NewDomainError("INVALID_BANK_ACCOUNT_NAME", "Bank account name cannot exceed 255 characters")
	}
	return BankAccountName(trimmed), nil
}

// String returns the name as a string
func (n BankAccountName) String() string {
	return string(n)
}

// BankDetails holds optional free-text routing details (BIC, bank name
// and the like). Trimmed, at most 500 characters; empty means absent.
type BankDetails string

// NewBankDetails validates and normalizes bank details
func NewBankDetails(value string) (BankDetails, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > 500 {
		return "", shared.NewDomainError("INVALID_BANK_DETAILS", "Bank details cannot exceed 500 characters")
	}
	return BankDetails(trimmed), nil
}

// String returns the details as a string
func (d BankDetails) String() string {
	return string(d)
}

// IsEmpty returns true when no details are present
func (d BankDetails) IsEmpty() bool {
	return d == ""
}

// BankAccount is a company bank account invoices can reference for
// payment instructions
type BankAccount struct {
	shared.BaseEntity
	CompanyID   uuid.UUID
	Name        BankAccountName
	Iban        valueobject.Iban
	BankDetails BankDetails
	ArchivedAt  *time.Time
}

// NewBankAccount creates a bank account for a company
func NewBankAccount(companyID uuid.UUID, name BankAccountName, iban valueobject.Iban, details BankDetails) *BankAccount {
	return &BankAccount{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyID:   companyID,
		Name:        name,
		Iban:        iban,
		BankDetails: details,
	}
}

// Update replaces the account's name, IBAN and details
func (b *BankAccount) Update(name BankAccountName, iban valueobject.Iban, details BankDetails) {
	b.Name = name
	b.Iban = iban
	b.BankDetails = details
	b.UpdatedAt = time.Now()
}

// Archive soft-flags the bank account. Idempotent.
func (b *BankAccount) Archive() {
	if b.ArchivedAt != nil {
		return
	}
	now := time.Now()
	b.ArchivedAt = &now
	b.UpdatedAt = now
}

// IsArchived returns true if the account has been archived
func (b *BankAccount) IsArchived() bool {
	return b.ArchivedAt != nil
}
