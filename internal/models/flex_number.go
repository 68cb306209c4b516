package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexNumber is a numeric intake field that older forms stored as free text.
// It accepts JSON numbers, numeric strings ("250,000", "$1,200.50", "40%")
// and null. Anything unparseable decodes as absent instead of failing the
// whole document.
type FlexNumber struct {
	Value   float64
	Valid   bool
	Percent bool // text carried a % sign; Value is in percent units
}

// Number returns a present FlexNumber
func Number(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

// ParseFlexNumber parses free text into a FlexNumber
func ParseFlexNumber(s string) FlexNumber {
	percent := strings.Contains(s, "%")
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return FlexNumber{}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return FlexNumber{}
	}
	return FlexNumber{Value: d.InexactFloat64(), Valid: true, Percent: percent}
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	if f.Percent {
		return json.Marshal(decimal.NewFromFloat(f.Value).String() + "%")
	}
	return json.Marshal(f.Value)
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*f = FlexNumber{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = FlexNumber{}
			return nil
		}
		*f = ParseFlexNumber(s)
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		*f = FlexNumber{}
		return nil
	}
	*f = FlexNumber{Value: d.InexactFloat64(), Valid: true}
	return nil
}
