package exchange

import (
	"fmt"

	"jf-travels-be/internal/entity"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = fmt.Errorf("unknown currency code")

// Converter computes conversions over a fixed rate table, pivoting every pair
// through USD. It never rounds; rounding belongs to Format so that chained
// conversions do not compound error.
type Converter struct {
	ordered []entity.CurrencyRate
	byCode  map[string]entity.CurrencyRate
}

func NewConverter(rates []entity.CurrencyRate) *Converter {
	byCode := make(map[string]entity.CurrencyRate, len(rates))
	for _, r := range rates {
		byCode[r.Code] = r
	}
	return &Converter{ordered: rates, byCode: byCode}
}

// Convert returns amount expressed in the target currency:
// amount / rate(from) * rate(to). Zero and negative amounts pass through the
// same formula unchecked.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := c.byCode[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	toRate, ok := c.byCode[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurrency, to)
	}
	inPivot := amount.Div(fromRate.Rate)
	return inPivot.Mul(toRate.Rate), nil
}

// RateBetween returns how many units of to one unit of from buys.
func (c *Converter) RateBetween(from, to string) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	return c.Convert(one, from, to)
}

// Format renders amount as a fixed two-decimal string tagged with the
// currency code, e.g. "154200.00 NGN".
func (c *Converter) Format(amount decimal.Decimal, code string) string {
	return amount.StringFixed(2) + " " + code
}

// Swap reverses a currency pair. It does NOT recompute anything: any cached
// converted amount is stale after a swap until the caller runs Convert again.
func Swap(from, to string) (string, string) {
	return to, from
}

// Has reports whether code is present in the table.
func (c *Converter) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Rates returns the table in its source order.
func (c *Converter) Rates() []entity.CurrencyRate {
	return c.ordered
}

// Rate returns the table row for code.
func (c *Converter) Rate(code string) (entity.CurrencyRate, bool) {
	r, ok := c.byCode[code]
	return r, ok
}
