package models

import (
	"fmt"
	"time"

	"github.com/fakturo/backend/internal/domain/company"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(50)"`
	Street       string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
	State        string `gorm:"type:varchar(255)"`
	PostalCode   string `gorm:"type:varchar(255)"`
	Country      string `gorm:"type:varchar(255)"`
	RegistryCode string `gorm:"type:varchar(100)"`
	VatNumber    string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() (*company.Company, error) {
	address, err := valueobject.NewAddress(m.Street, m.City, m.State, m.PostalCode, m.Country)
	if err != nil {
		return nil, fmt.Errorf("company %s: %w", m.ID, err)
	}
	return &company.Company{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      address,
		RegistryCode: m.RegistryCode,
		VatNumber:    m.VatNumber,
	}, nil
}

// CompanyModelFromDomain creates a persistence model from a domain Company.
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Street:       c.Address.Street(),
		City:         c.Address.City(),
		State:        c.Address.State(),
		PostalCode:   c.Address.PostalCode(),
		Country:      c.Address.Country(),
		RegistryCode: c.RegistryCode,
		VatNumber:    c.VatNumber,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// CompanyMemberModel is the persistence model for company membership.
type CompanyMemberModel struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_company_user,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_company_user,priority:2"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'"`
}

// TableName returns the table name for GORM
func (CompanyMemberModel) TableName() string {
	return "company_members"
}

// ToDomain converts the persistence model to a domain CompanyMember.
func (m *CompanyMemberModel) ToDomain() *company.CompanyMember {
	return &company.CompanyMember{
		BaseEntity: m.BaseModel.ToDomain(),
		CompanyID:  m.CompanyID,
		UserID:     m.UserID,
		Role:       company.MemberRole(m.Role),
	}
}

// CompanyMemberModelFromDomain creates a persistence model from a domain member.
func CompanyMemberModelFromDomain(member *company.CompanyMember) *CompanyMemberModel {
	m := &CompanyMemberModel{
		CompanyID: member.CompanyID,
		UserID:    member.UserID,
		Role:      string(member.Role),
	}
	m.FromDomainBaseEntity(member.BaseEntity)
	return m
}

// BankAccountModel is the persistence model for the BankAccount entity.
type BankAccountModel struct {
	BaseModel
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_bank_account_company_iban,priority:1"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Iban        string     `gorm:"type:varchar(34);not null;uniqueIndex:idx_bank_account_company_iban,priority:2"`
	BankDetails string     `gorm:"type:varchar(500)"`
	ArchivedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToDomain converts the persistence model to a domain BankAccount.
func (m *BankAccountModel) ToDomain() (*company.BankAccount, error) {
	name, err := company.NewBankAccountName(m.Name)
	if err != nil {
		return nil, fmt.Errorf("bank account %s: %w", m.ID, err)
	}
	iban, err := valueobject.NewIban(m.Iban)
	if err != nil {
		return nil, fmt.Errorf("bank account %s: %w", m.ID, err)
	}
	details, err := company.NewBankDetails(m.BankDetails)
	if err != nil {
		return nil, fmt.Errorf("bank account %s: %w", m.ID, err)
	}
	return &company.BankAccount{
		BaseEntity:  m.BaseModel.ToDomain(),
		CompanyID:   m.CompanyID,
		Name:        name,
		Iban:        iban,
		BankDetails: details,
		ArchivedAt:  m.ArchivedAt,
	}, nil
}

// BankAccountModelFromDomain creates a persistence model from a domain BankAccount.
func BankAccountModelFromDomain(b *company.BankAccount) *BankAccountModel {
	m := &BankAccountModel{
		CompanyID:   b.CompanyID,
		Name:        b.Name.String(),
		Iban:        b.Iban.String(),
		BankDetails: b.BankDetails.String(),
		ArchivedAt:  b.ArchivedAt,
	}
	m.FromDomainBaseEntity(b.BaseEntity)
	return m
}
