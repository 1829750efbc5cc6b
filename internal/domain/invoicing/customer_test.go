package invoicing

import (
	"testing"

	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	name, err := NewCustomerName("Acme Corp")
	require.NoError(t, err)
	addr := valueobject.MustNewAddress("Main St 1", "Copenhagen", "", "1000", "Denmark")

	companyID := uuid.New()
	c := NewCustomer(companyID, name, addr)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, companyID, c.CompanyID)
	assert.Equal(t, name, c.Name)
	assert.False(t, c.IsArchived())
}

func TestCustomerUpdate(t *testing.T) {
	name, _ := NewCustomerName("Acme Corp")
	c := NewCustomer(uuid.New(), name, valueobject.EmptyAddress())

	newName, _ := NewCustomerName("Acme Corporation")
	newAddr := valueobject.MustNewAddress("Elm St 5", "Oslo", "", "", "Norway")
	c.Update(newName, newAddr)

	assert.Equal(t, newName, c.Name)
	assert.Equal(t, newAddr, c.Address)
}

func TestCustomerArchiveIsIdempotent(t *testing.T) {
	name, _ := NewCustomerName("Acme Corp")
	c := NewCustomer(uuid.New(), name, valueobject.EmptyAddress())

	c.Archive()
	require.True(t, c.IsArchived())
	first := *c.ArchivedAt

	c.Archive()
	assert.Equal(t, first, *c.ArchivedAt)
}
