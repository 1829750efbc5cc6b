package valueobject

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with all fields", func(t *testing.T) {
		addr, err := NewAddress("Main St 1", "Copenhagen", "", "1000", "Denmark")
		require.NoError(t, err)
		assert.Equal(t, "Main St 1", addr.Street())
		assert.Equal(t, "Copenhagen", addr.City())
		assert.Equal(t, "1000", addr.PostalCode())
		assert.Equal(t, "Denmark", addr.Country())
	})

	t.Run("trims fields", func(t *testing.T) {
		addr, err := NewAddress("  Main St 1  ", " Copenhagen ", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Main St 1", addr.Street())
		assert.Equal(t, "Copenhagen", addr.City())
	})

	t.Run("whitespace-only fields become absent", func(t *testing.T) {
		addr, err := NewAddress("   ", "   ", "", "", "")
		require.NoError(t, err)
		assert.True(t, addr.IsEmpty())
	})

	t.Run("rejects over-long field", func(t *testing.T) {
		_, err := NewAddress(strings.Repeat("x", 256), "", "", "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "255 characters")
	})
}

func TestAddressLines(t *testing.T) {
	addr := MustNewAddress("Main St 1", "Aarhus", "Midtjylland", "8000", "Denmark")
	assert.Equal(t, []string{"Main St 1", "Aarhus, Midtjylland 8000", "Denmark"}, addr.Lines())

	partial := MustNewAddress("", "Oslo", "", "", "Norway")
	assert.Equal(t, []string{"Oslo", "Norway"}, partial.Lines())

	assert.Empty(t, EmptyAddress().Lines())
}

func TestAddressString(t *testing.T) {
	addr := MustNewAddress("Main St 1", "Aarhus", "", "8000", "Denmark")
	assert.Equal(t, "Main St 1, Aarhus 8000, Denmark", addr.String())
	assert.Equal(t, "", EmptyAddress().String())
}

func TestAddressJSON(t *testing.T) {
	addr := MustNewAddress("Main St 1", "Stockholm", "", "111 22", "Sweden")
	data, err := json.Marshal(addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, addr.Equals(decoded))
}
