package invoicing

import (
	"time"

	"github.com/fakturo/backend/internal/domain/shared"
	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Customer represents a billable customer within a company
type Customer struct {
	shared.BaseEntity
	CompanyID  uuid.UUID
	Name       CustomerName
	Address    valueobject.Address
	ArchivedAt *time.Time
}

// NewCustomer creates a new customer for a company
func NewCustomer(companyID uuid.UUID, name CustomerName, address valueobject.Address) *Customer {
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		CompanyID:  companyID,
		Name:       name,
		Address:    address,
	}
}

// Update replaces the customer's name and address
func (c *Customer) Update(name CustomerName, address valueobject.Address) {
	c.Name = name
	c.Address = address
	c.UpdatedAt = time.Now()
}

// Archive soft-flags the customer. Archiving an already archived
// customer is a no-op; there is no un-archive.
func (c *Customer) Archive() {
	if c.ArchivedAt != nil {
		return
	}
	now := time.Now()
	c.ArchivedAt = &now
	c.UpdatedAt = now
}

// IsArchived returns true if the customer has been archived
func (c *Customer) IsArchived() bool {
	return c.ArchivedAt != nil
}
