package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const vatRateMaxScale = 2

var hundred = decimal.NewFromInt(100)

// VatRate is a value object representing a VAT percentage between 0 and 100
// with at most two decimal places. It is immutable.
type VatRate struct {
	value decimal.Decimal
}

// NewVatRate creates a new VatRate with the specified percentage
func NewVatRate(value decimal.Decimal) (VatRate, error) {
	if value.IsNegative() {
		return VatRate{}, errors.New("vat rate cannot be negative")
	}
	if value.GreaterThan(hundred) {
		return VatRate{}, errors.New("vat rate cannot exceed 100")
	}
	if !value.Equal(value.Truncate(vatRateMaxScale)) {
		return VatRate{}, fmt.Errorf("vat rate cannot have more than %d decimal places", vatRateMaxScale)
	}
	return VatRate{value: value}, nil
}

// NewVatRateFromString creates VatRate from a string representation
func NewVatRateFromString(value string) (VatRate, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return VatRate{}, fmt.Errorf("invalid vat rate string: %w", err)
	}
	return NewVatRate(d)
}

// NewVatRateFromInt creates VatRate from an int64 percentage
func NewVatRateFromInt(value int64) (VatRate, error) {
	return NewVatRate(decimal.NewFromInt(value))
}

// MustNewVatRate creates a VatRate and panics on error
func MustNewVatRate(value decimal.Decimal) VatRate {
	r, err := NewVatRate(value)
	if err != nil {
		panic(err)
	}
	return r
}

// ZeroVatRate returns a 0% rate
func ZeroVatRate() VatRate {
	return VatRate{value: decimal.Zero}
}

// Value returns the percentage value
func (r VatRate) Value() decimal.Decimal {
	return r.value
}

// Multiplier returns the rate as a fraction (25% -> 0.25)
func (r VatRate) Multiplier() decimal.Decimal {
	return r.value.Div(hundred)
}

// IsZero returns true if the rate is 0%
func (r VatRate) IsZero() bool {
	return r.value.IsZero()
}

// Equals returns true if both rates are equal
func (r VatRate) Equals(other VatRate) bool {
	return r.value.Equal(other.value)
}

// String returns a string representation of the VatRate
func (r VatRate) String() string {
	return fmt.Sprintf("%s%%", r.value.String())
}

// MarshalJSON implements json.Marshaler
func (r VatRate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value.String())
}

// UnmarshalJSON implements json.Unmarshaler, applying the same
// validation as NewVatRate.
func (r *VatRate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewVatRateFromString(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
