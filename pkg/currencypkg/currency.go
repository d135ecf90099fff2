// Package currencypkg formats wallet amounts for display.
package currencypkg

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Constants for the commonly used wallet currencies.
const (
	INR = "INR"
	USD = "USD"
	EUR = "EUR"
)

// IsSupportedCurrency returns true if the currency code is known to the formatter.
func IsSupportedCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// Formatter renders decimal amounts in a single wallet currency.
type Formatter struct {
	currency *money.Currency
}

// NewFormatter returns a Formatter for code, falling back to INR for unknown codes.
func NewFormatter(code string) Formatter {
	c := money.GetCurrency(code)
	if c == nil {
		c = money.GetCurrency(INR)
	}

	return Formatter{currency: c}
}

// Format returns amount with the currency symbol and thousand separators, e.g. "₹2,240.00".
func (f Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return f.currency.Formatter().Format(minor)
}

// Code returns the ISO code of the formatter currency.
func (f Formatter) Code() string {
	return f.currency.Code
}
