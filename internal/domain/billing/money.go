package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// Money is an amount rendered as a JSON number with exactly two decimals
// (1484 renders as 1484.00).
type Money decimal.Decimal

// NewMoney rounds v to 2 decimal places, half away from zero.
func NewMoney(v float64) Money {
	return Money(decimal.NewFromFloat(v).Round(2))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money(decimal.Decimal(n).Round(2))
	return nil
}

func (m Money) String() string {
	return decimal.Decimal(m).StringFixed(2)
}

func (m Money) Float64() float64 {
	return decimal.Decimal(m).InexactFloat64()
}
