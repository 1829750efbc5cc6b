package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PaymentTermsKind enumerates the supported payment terms
type PaymentTermsKind string

const (
	PaymentTermsDueOnReceipt PaymentTermsKind = "due_on_receipt"
	PaymentTermsNet15        PaymentTermsKind = "net_15"
	PaymentTermsNet30        PaymentTermsKind = "net_30"
	PaymentTermsNet60        PaymentTermsKind = "net_60"
	PaymentTermsCustom       PaymentTermsKind = "custom"
)

// PaymentTerms is a value object describing when an invoice falls due,
// expressed as a number of days after the invoice date. It is immutable.
type PaymentTerms struct {
	kind PaymentTermsKind
	days int
}

// DueOnReceipt returns payment terms of zero days
func DueOnReceipt() PaymentTerms {
	return PaymentTerms{kind: PaymentTermsDueOnReceipt}
}

// Net15 returns net-15 payment terms
func Net15() PaymentTerms {
	return PaymentTerms{kind: PaymentTermsNet15, days: 15}
}

// Net30 returns net-30 payment terms
func Net30() PaymentTerms {
	return PaymentTerms{kind: PaymentTermsNet30, days: 30}
}

// Net60 returns net-60 payment terms
func Net60() PaymentTerms {
	return PaymentTerms{kind: PaymentTermsNet60, days: 60}
}

// CustomTerms returns payment terms with an arbitrary non-negative
// number of days
func CustomTerms(days int) (PaymentTerms, error) {
	if days < 0 {
		return PaymentTerms{}, errors.New("custom payment terms days cannot be negative")
	}
	return PaymentTerms{kind: PaymentTermsCustom, days: days}, nil
}

// ParsePaymentTerms parses the string form produced by String.
// Custom terms use the form "custom_<days>".
func ParsePaymentTerms(s string) (PaymentTerms, error) {
	switch s {
	case string(PaymentTermsDueOnReceipt):
		return DueOnReceipt(), nil
	case string(PaymentTermsNet15):
		return Net15(), nil
	case string(PaymentTermsNet30):
		return Net30(), nil
	case string(PaymentTermsNet60):
		return Net60(), nil
	}
	if rest, ok := strings.CutPrefix(s, "custom_"); ok {
		days, err := strconv.Atoi(rest)
		if err != nil {
			return PaymentTerms{}, fmt.Errorf("invalid custom payment terms: %s", s)
		}
		return CustomTerms(days)
	}
	return PaymentTerms{}, fmt.Errorf("invalid payment terms: %s", s)
}

// Kind returns the payment terms kind
func (t PaymentTerms) Kind() PaymentTermsKind {
	return t.kind
}

// Days returns the number of days after the invoice date that
// payment is due
func (t PaymentTerms) Days() int {
	return t.days
}

// Equals returns true if both terms are equal
func (t PaymentTerms) Equals(other PaymentTerms) bool {
	return t.kind == other.kind && t.days == other.days
}

// String returns the canonical string form, round-trippable
// through ParsePaymentTerms
func (t PaymentTerms) String() string {
	if t.kind == PaymentTermsCustom {
		return fmt.Sprintf("custom_%d", t.days)
	}
	return string(t.kind)
}

// MarshalJSON implements json.Marshaler
func (t PaymentTerms) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *PaymentTerms) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePaymentTerms(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
