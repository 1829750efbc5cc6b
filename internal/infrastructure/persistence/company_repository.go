package persistence

import (
	"context"
	"errors"

	"github.com/fakturo/backend/internal/domain/company"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements company.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create persists a new company
func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := models.CompanyModelFromDomain(c)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing company
func (r *GormCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model := models.CompanyModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ company.CompanyRepository = (*GormCompanyRepository)(nil)

// GormCompanyMemberRepository implements company.CompanyMemberRepository using GORM
type GormCompanyMemberRepository struct {
	db *gorm.DB
}

// NewGormCompanyMemberRepository creates a new GormCompanyMemberRepository
func NewGormCompanyMemberRepository(db *gorm.DB) *GormCompanyMemberRepository {
	return &GormCompanyMemberRepository{db: db}
}

// Create persists a new membership
func (r *GormCompanyMemberRepository) Create(ctx context.Context, member *company.CompanyMember) error {
	model := models.CompanyMemberModelFromDomain(member)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete removes a membership
func (r *GormCompanyMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyMemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindMember returns the membership linking the user to the company
func (r *GormCompanyMemberRepository) FindMember(ctx context.Context, companyID, userID uuid.UUID) (*company.CompanyMember, error) {
	var model models.CompanyMemberModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND user_id = ?", companyID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCompanyID finds all memberships of a company
func (r *GormCompanyMemberRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]company.CompanyMember, error) {
	var memberModels []models.CompanyMemberModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, err
	}
	members := make([]company.CompanyMember, len(memberModels))
	for i := range memberModels {
		members[i] = *memberModels[i].ToDomain()
	}
	return members, nil
}

// Ensure GormCompanyMemberRepository implements CompanyMemberRepository
var _ company.CompanyMemberRepository = (*GormCompanyMemberRepository)(nil)

// GormBankAccountRepository implements company.BankAccountRepository using GORM
type GormBankAccountRepository struct {
	db *gorm.DB
}

// NewGormBankAccountRepository creates a new GormBankAccountRepository
func NewGormBankAccountRepository(db *gorm.DB) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

// Create persists a new bank account
func (r *GormBankAccountRepository) Create(ctx context.Context, account *company.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing bank account
func (r *GormBankAccountRepository) Update(ctx context.Context, account *company.BankAccount) error {
	model := models.BankAccountModelFromDomain(account)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a bank account by its ID
func (r *GormBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByCompanyID finds all bank accounts belonging to a company
func (r *GormBankAccountRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]company.BankAccount, error) {
	var accountModels []models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&accountModels).Error; err != nil {
		return nil, err
	}
	accounts := make([]company.BankAccount, len(accountModels))
	for i := range accountModels {
		account, err := accountModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		accounts[i] = *account
	}
	return accounts, nil
}

// ExistsByIban checks IBAN uniqueness within a company
func (r *GormBankAccountRepository) ExistsByIban(ctx context.Context, companyID uuid.UUID, iban valueobject.Iban, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.BankAccountModel{}).
		Where("company_id = ? AND iban = ?", companyID, iban.String())
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormBankAccountRepository implements BankAccountRepository
var _ company.BankAccountRepository = (*GormBankAccountRepository)(nil)
