package billing

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric input field that accepts either a JSON number or a
// numeric string ("12.5"). An empty string decodes to zero. Use *Number so
// an absent field stays nil.
//
// Bad values fail with *json.UnmarshalTypeError, which the decoder fills
// with the field path ("parts.quantity").
type Number decimal.Decimal

var numberType = reflect.TypeOf(Number{})

// IsNumberType reports whether t is Number, for error messages.
func IsNumberType(t reflect.Type) bool {
	return t == numberType
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &json.UnmarshalTypeError{Value: "string", Type: numberType}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = Number(decimal.Zero)
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: numberType}
		}
		*n = Number(d)
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return &json.UnmarshalTypeError{Value: literalKind(data), Type: numberType}
	}
	*n = Number(d)
	return nil
}

func literalKind(data []byte) string {
	switch {
	case len(data) == 0:
		return "empty"
	case data[0] == '{':
		return "object"
	case data[0] == '[':
		return "array"
	case data[0] == 't' || data[0] == 'f':
		return "bool"
	}
	return string(data)
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

// NewNumber is a convenience for building inputs in code.
func NewNumber(v float64) *Number {
	n := Number(decimal.NewFromFloat(v))
	return &n
}

// Decimal returns the value, or zero when n is nil.
func (n *Number) Decimal() decimal.Decimal {
	if n == nil {
		return decimal.Zero
	}
	return decimal.Decimal(*n)
}

// Float64 returns the value, or zero when n is nil.
func (n *Number) Float64() float64 {
	return n.Decimal().InexactFloat64()
}
