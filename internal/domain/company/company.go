package company

import (
	"strings"
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Company is the owning organization for customers, invoices and bank
// accounts. Every invoicing operation is scoped to one company.
type Company struct {
	shared.BaseEntity
	Name         string
	Email        string
	Phone        string
	Address      valueobject.Address
	RegistryCode string
	VatNumber    string
}

// NewCompany creates a new company
func NewCompany(name string) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}, nil
}

// Rename changes the company name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	return nil
}

// SetContact sets the company's contact details
func (c *Company) SetContact(email, phone string) {
	c.Email = strings.TrimSpace(email)
	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
}

// SetRegistration sets the registry code and VAT number
func (c *Company) SetRegistration(registryCode, vatNumber string) {
	c.RegistryCode = strings.TrimSpace(registryCode)
	c.VatNumber = strings.TrimSpace(vatNumber)
	c.UpdatedAt = time.Now()
}

func validateCompanyName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(trimmed) > 255 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 255 characters")
	}
	return nil
}

// MemberRole is a member's role within a company
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// CompanyMember links a user to a company. Membership is the sole
// authorization gate for invoicing operations.
type CompanyMember struct {
	shared.BaseEntity
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Role      MemberRole
}

// NewCompanyMember creates a company membership
func NewCompanyMember(companyID, userID uuid.UUID, role MemberRole) (*CompanyMember, error) {
	switch role {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
	default:
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be owner, admin or member")
	}
	return &CompanyMember{
		BaseEntity: shared.NewBaseEntity(),
		CompanyID:  companyID,
		UserID:     userID,
		Role:       role,
	}, nil
}
