// Package core provides the domain model for the trip companion: expense
// records with snapshot exchange rates, the ledger aggregations, and the
// display ordering rules.
//
// This file contains parsing helpers for user-supplied amounts and rates.
package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered amount string into whole currency
// units. Amounts are entered in yen, which has no fractional unit, so
// only positive integers are accepted.
//
// Examples:
//
//	ParseAmount("1000") -> 1000, nil
//	ParseAmount("0")    -> 0, ErrInvalidAmount
//	ParseAmount("12.5") -> 0, ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseRate converts a user-entered exchange rate into a decimal. The
// rate must be a positive number; both dot and comma separators are
// accepted.
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, ErrInvalidRate
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidRate
	}
	return d, nil
}

// FormatHome renders a home-currency value rounded to whole dollars for
// display, matching how totals are shown in the UI.
func FormatHome(v decimal.Decimal) string {
	return v.Round(0).StringFixed(0)
}
