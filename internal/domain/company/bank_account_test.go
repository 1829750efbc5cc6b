package company

import (
	"strings"
	"testing"

	"github.com/fakturo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankAccountName(t *testing.T) {
	n, err := NewBankAccountName(" Operating account ")
	require.NoError(t, err)
	assert.Equal(t, "Operating account", n.String())

	_, err = NewBankAccountName("  ")
	assert.Error(t, err)

	_, err = NewBankAccountName(strings.Repeat("x", 256))
	assert.Error(t, err)
}

func TestNewBankDetails(t *testing.T) {
	d, err := NewBankDetails(" BIC: DABADKKK ")
	require.NoError(t, err)
	assert.Equal(t, "BIC: DABADKKK", d.String())

	empty, err := NewBankDetails("   ")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = NewBankDetails(strings.Repeat("x", 501))
	assert.Error(t, err)
}

func TestBankAccountArchive(t *testing.T) {
	name, _ := NewBankAccountName("Operating account")
	iban := valueobject.MustNewIban("DK5000400440116243")
	acct := NewBankAccount(uuid.New(), name, iban, "")

	acct.Archive()
	require.True(t, acct.IsArchived())
	first := *acct.ArchivedAt

	acct.Archive()
	assert.Equal(t, first, *acct.ArchivedAt)
}

func TestNewCompany(t *testing.T) {
	c, err := NewCompany("  Fakturo ApS  ")
	require.NoError(t, err)
	assert.Equal(t, "Fakturo ApS", c.Name)

	_, err = NewCompany("   ")
	assert.Error(t, err)
}

func TestNewCompanyMember(t *testing.T) {
	m, err := NewCompanyMember(uuid.New(), uuid.New(), MemberRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, MemberRoleAdmin, m.Role)

	_, err = NewCompanyMember(uuid.New(), uuid.New(), "viewer")
	assert.Error(t, err)
}
