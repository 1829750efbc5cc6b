package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentTermsDays(t *testing.T) {
	assert.Equal(t, 0, DueOnReceipt().Days())
	assert.Equal(t, 15, Net15().Days())
	assert.Equal(t, 30, Net30().Days())
	assert.Equal(t, 60, Net60().Days())

	custom, err := CustomTerms(45)
	require.NoError(t, err)
	assert.Equal(t, 45, custom.Days())
}

func TestCustomTerms(t *testing.T) {
	t.Run("allows zero days", func(t *testing.T) {
		terms, err := CustomTerms(0)
		require.NoError(t, err)
		assert.Equal(t, 0, terms.Days())
		assert.Equal(t, PaymentTermsCustom, terms.Kind())
	})

	t.Run("rejects negative days", func(t *testing.T) {
		_, err := CustomTerms(-1)
		assert.Error(t, err)
	})
}

func TestParsePaymentTerms(t *testing.T) {
	t.Run("round trips all kinds", func(t *testing.T) {
		custom, _ := CustomTerms(45)
		for _, terms := range []PaymentTerms{DueOnReceipt(), Net15(), Net30(), Net60(), custom} {
			parsed, err := ParsePaymentTerms(terms.String())
			require.NoError(t, err)
			assert.True(t, terms.Equals(parsed))
		}
	})

	t.Run("parses custom form", func(t *testing.T) {
		terms, err := ParsePaymentTerms("custom_45")
		require.NoError(t, err)
		assert.Equal(t, 45, terms.Days())
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "net_45", "custom_", "custom_abc", "custom_-1"} {
			_, err := ParsePaymentTerms(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestPaymentTermsString(t *testing.T) {
	assert.Equal(t, "due_on_receipt", DueOnReceipt().String())
	assert.Equal(t, "net_30", Net30().String())

	custom, _ := CustomTerms(7)
	assert.Equal(t, "custom_7", custom.String())
}
