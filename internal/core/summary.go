package core

import "github.com/shopspring/decimal"

// Totals holds the ledger aggregates in the home currency.
type Totals struct {
	Total   decimal.Decimal
	Paid    decimal.Decimal
	Pending decimal.Decimal
}

// Breakdown maps each category to its summed home-currency amount.
type Breakdown map[Category]decimal.Decimal

// ComputeTotals sums every record through its own snapshot rate.
// Pending is derived as Total − Paid so the three always reconcile.
func ComputeTotals(items []Expense) Totals {
	var total, paid decimal.Decimal
	for _, e := range items {
		v := e.HomeValue()
		total = total.Add(v)
		if e.Paid {
			paid = paid.Add(v)
		}
	}
	return Totals{Total: total, Paid: paid, Pending: total.Sub(paid)}
}

// ComputeBreakdown partitions the full record set by category.
func ComputeBreakdown(items []Expense) Breakdown {
	b := make(Breakdown)
	for _, e := range items {
		b[e.Category] = b[e.Category].Add(e.HomeValue())
	}
	return b
}

// Max returns the largest category amount, floored at 1 so proportional
// bar widths never divide by zero on an empty ledger.
func (b Breakdown) Max() decimal.Decimal {
	max := decimal.NewFromInt(1)
	for _, v := range b {
		if v.GreaterThan(max) {
			max = v
		}
	}
	return max
}
