package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const quantityMaxScale = 4

// Quantity is a value object representing a billable quantity.
// It must be strictly positive and carry at most four decimal places;
// values with more precision are rejected, not truncated.
// It is immutable - all operations return new Quantity instances.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity creates a new Quantity with the specified value
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errors.New("quantity must be positive")
	}
	if !value.Equal(value.Truncate(quantityMaxScale)) {
		return Quantity{}, fmt.Errorf("quantity cannot have more than %d decimal places", quantityMaxScale)
	}
	return Quantity{value: value}, nil
}

// NewQuantityFromString creates Quantity from a string representation
func NewQuantityFromString(value string) (Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity string: %w", err)
	}
	return NewQuantity(d)
}

// NewQuantityFromInt creates Quantity from an int64 value
func NewQuantityFromInt(value int64) (Quantity, error) {
	return NewQuantity(decimal.NewFromInt(value))
}

// MustNewQuantity creates a Quantity and panics on error
func MustNewQuantity(value decimal.Decimal) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

// Amount returns the decimal value
func (q Quantity) Amount() decimal.Decimal {
	return q.value
}

// Equals returns true if both quantities are equal
func (q Quantity) Equals(other Quantity) bool {
	return q.value.Equal(other.value)
}

// String returns a string representation of the Quantity
func (q Quantity) String() string {
	return q.value.String()
}

// MarshalJSON implements json.Marshaler
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.value.String())
}

// UnmarshalJSON implements json.Unmarshaler, applying the same
// validation as NewQuantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewQuantityFromString(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
