package persistence

import (
	"context"
	"errors"

	"github.com/fakturo/backend/internal/domain/invoicing"
	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements invoicing.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create persists a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *invoicing.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err, "idx_customer_company_name") {
			return invoicing.ErrCustomerNameExists(customer.Name)
		}
		return err
	}
	return nil
}

// Update persists changes to an existing customer
func (r *GormCustomerRepository) Update(ctx context.Context, customer *invoicing.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err, "idx_customer_company_name") {
			return invoicing.ErrCustomerNameExists(customer.Name)
		}
		return err
	}
	return nil
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByCompanyID finds all customers belonging to a company, archived included
func (r *GormCustomerRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]invoicing.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return customersToDomain(customerModels)
}

// FindActiveByCompanyID finds all non-archived customers belonging to a company
func (r *GormCustomerRepository) FindActiveByCompanyID(ctx context.Context, companyID uuid.UUID) ([]invoicing.Customer, error) {
	var customerModels []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND archived_at IS NULL", companyID).
		Order("name ASC").
		Find(&customerModels).Error; err != nil {
		return nil, err
	}
	return customersToDomain(customerModels)
}

// ExistsByName checks name uniqueness among non-archived customers of a company
func (r *GormCustomerRepository) ExistsByName(ctx context.Context, companyID uuid.UUID, name invoicing.CustomerName, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("company_id = ? AND name = ? AND archived_at IS NULL", companyID, name.String())
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func customersToDomain(customerModels []models.CustomerModel) ([]invoicing.Customer, error) {
	customers := make([]invoicing.Customer, len(customerModels))
	for i := range customerModels {
		customer, err := customerModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		customers[i] = *customer
	}
	return customers, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ invoicing.CustomerRepository = (*GormCustomerRepository)(nil)
