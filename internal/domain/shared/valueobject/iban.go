package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

// Iban is a value object representing an International Bank Account
// Number. The canonical form is uppercase with no whitespace and a
// valid ISO 7064 mod-97 checksum. It is immutable.
type Iban struct {
	value string
}

// NewIban normalizes and validates an IBAN. Whitespace anywhere in the
// input is stripped and letters are uppercased before validation.
func NewIban(input string) (Iban, error) {
	var sb strings.Builder
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	value := sb.String()

	if len(value) < ibanMinLength || len(value) > ibanMaxLength {
		return Iban{}, fmt.Errorf("iban must be between %d and %d characters", ibanMinLength, ibanMaxLength)
	}
	if err := validateIbanFormat(value); err != nil {
		return Iban{}, err
	}
	if ibanChecksum(value) != 1 {
		return Iban{}, errors.New("iban checksum is invalid")
	}
	return Iban{value: value}, nil
}

// MustNewIban creates an Iban and panics on error
func MustNewIban(input string) Iban {
	iban, err := NewIban(input)
	if err != nil {
		panic(err)
	}
	return iban
}

// validateIbanFormat checks the structural rules: two letters (country
// code), two digits (check digits), then alphanumerics only.
func validateIbanFormat(value string) error {
	for i, r := range value {
		switch {
		case i < 2:
			if r < 'A' || r > 'Z' {
				return errors.New("iban must start with a two-letter country code")
			}
		case i < 4:
			if r < '0' || r > '9' {
				return errors.New("iban check digits must be numeric")
			}
		default:
			if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				return errors.New("iban may only contain letters and digits")
			}
		}
	}
	return nil
}

// ibanChecksum computes the ISO 7064 mod-97 remainder: the first four
// characters move to the end, letters map to 10..35, and the resulting
// digit string is reduced modulo 97 one digit at a time.
func ibanChecksum(value string) int {
	rearranged := value[4:] + value[:4]
	remainder := 0
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			n := int(r-'A') + 10
			remainder = (remainder*10 + n/10) % 97
			remainder = (remainder*10 + n%10) % 97
		} else {
			remainder = (remainder*10 + int(r-'0')) % 97
		}
	}
	return remainder
}

// String returns the canonical compact form
func (i Iban) String() string {
	return i.value
}

// CountryCode returns the two-letter country prefix
func (i Iban) CountryCode() string {
	return i.value[:2]
}

// Formatted returns the IBAN grouped in blocks of four characters for
// display. The canonical form is unchanged.
func (i Iban) Formatted() string {
	var sb strings.Builder
	for idx := 0; idx < len(i.value); idx += 4 {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		end := min(idx+4, len(i.value))
		sb.WriteString(i.value[idx:end])
	}
	return sb.String()
}

// Equals returns true if both IBANs are equal
func (i Iban) Equals(other Iban) bool {
	return i.value == other.value
}

// MarshalJSON implements json.Marshaler
func (i Iban) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.value)
}

// UnmarshalJSON implements json.Unmarshaler, applying full validation
func (i *Iban) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewIban(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
