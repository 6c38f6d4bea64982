// Package format renders monetary amounts for logs and reports.
package format

import "github.com/Rhymond/go-money"

// DefaultCurrency is the ISO code used when the caller does not specify one.
const DefaultCurrency = "USD"

// Money returns a human-readable currency string with symbol and thousands
// separators in the default currency (e.g. "-$1,234.56").
func Money(amount float64) string {
	return MoneyIn(amount, DefaultCurrency)
}

// MoneyIn formats an amount in the given ISO currency code.
func MoneyIn(amount float64, code string) string {
	return money.NewFromFloat(amount, code).Display()
}
