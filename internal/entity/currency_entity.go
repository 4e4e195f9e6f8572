package entity

import "github.com/shopspring/decimal"

// PivotCurrency is the reference currency every conversion is routed through.
// The rate table is expected to carry it with Rate == 1.
const PivotCurrency = "USD"

// CurrencyRate is one row of the bureau-de-change rate table.
// Rate is units of this currency per 1 USD. BuyRate and SellRate are the
// posted counter spread; they are informational and carry no invariant
// against Rate.
type CurrencyRate struct {
	Code     string
	Name     string
	Flag     string
	Rate     decimal.Decimal
	BuyRate  decimal.Decimal
	SellRate decimal.Decimal
}
