// Package money formats integer minor units. Amounts are stored and computed as cents;
// this is the only place they are turned into decimal strings.
package money

import "github.com/shopspring/decimal"

func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
