package valueobject

import (
	"encoding/json"
	"fmt"
	"strings"
)

const addressFieldMaxLength = 255

// Address is a value object representing a postal address. Every field
// is optional; fields are trimmed and blank fields are treated as
// absent. It is immutable.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddress creates a new Address. Each field is trimmed and, if
// non-empty, limited to 255 characters.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	addr := Address{
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
	}
	for name, value := range map[string]string{
		"street":      addr.street,
		"city":        addr.city,
		"state":       addr.state,
		"postal code": addr.postalCode,
		"country":     addr.country,
	} {
		if len(value) > addressFieldMaxLength {
			return Address{}, fmt.Errorf("%s cannot exceed %d characters", name, addressFieldMaxLength)
		}
	}
	return addr, nil
}

// MustNewAddress creates a new Address, panics on error
func MustNewAddress(street, city, state, postalCode, country string) Address {
	addr, err := NewAddress(street, city, state, postalCode, country)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyAddress returns an empty address (for optional address fields)
func EmptyAddress() Address {
	return Address{}
}

// Street returns the street line
func (a Address) Street() string {
	return a.street
}

// City returns the city
func (a Address) City() string {
	return a.city
}

// State returns the state or region
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country
func (a Address) Country() string {
	return a.country
}

// IsEmpty returns true if every field is blank
func (a Address) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.state == "" &&
		a.postalCode == "" && a.country == ""
}

// Lines returns the non-empty address lines in display order:
// street, then "city, state postal", then country.
func (a Address) Lines() []string {
	var lines []string
	if a.street != "" {
		lines = append(lines, a.street)
	}
	locality := a.city
	if a.state != "" {
		if locality != "" {
			locality += ", "
		}
		locality += a.state
	}
	if a.postalCode != "" {
		if locality != "" {
			locality += " "
		}
		locality += a.postalCode
	}
	if locality != "" {
		lines = append(lines, locality)
	}
	if a.country != "" {
		lines = append(lines, a.country)
	}
	return lines
}

// String returns the address as a single comma-separated line
func (a Address) String() string {
	return strings.Join(a.Lines(), ", ")
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a == other
}

// addressJSON is used for JSON marshaling/unmarshaling
type addressJSON struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:     a.street,
		City:       a.city,
		State:      a.state,
		PostalCode: a.postalCode,
		Country:    a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler, delegating to NewAddress
// so the length limits apply
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	addr, err := NewAddress(v.Street, v.City, v.State, v.PostalCode, v.Country)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
