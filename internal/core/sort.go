package core

import (
	"regexp"
	"sort"
	"strconv"
)

// noDateKey pushes records without a parseable date to the bottom of the
// unpaid partition.
const noDateKey = 9999

var dateKeyPattern = regexp.MustCompile(`(\d+)/(\d+)`)

// DateKey extracts the first M/D-shaped substring from a free-text date
// label and folds it into a comparable integer M×100+D. The label is
// unconstrained user text (ranges like "4/5-4/9", markers like "已付"),
// so this is a best-effort heuristic, not a date parse.
func DateKey(date string) int {
	m := dateKeyPattern.FindStringSubmatch(date)
	if m == nil {
		return noDateKey
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return month*100 + day
}

// SortForDisplay returns the records in their display order: the paid
// partition first, then the unpaid one.
//
// Paid records with static ids keep their definition order and sort
// before dynamic (timestamp) ids; dynamic ids sort ascending, oldest
// creation first. Unpaid records sort by DateKey.
func SortForDisplay(items []Expense) []Expense {
	var paid, unpaid []Expense
	for _, e := range items {
		if e.Paid {
			paid = append(paid, e)
		} else {
			unpaid = append(unpaid, e)
		}
	}

	sort.SliceStable(paid, func(i, j int) bool {
		a, b := paid[i].ID, paid[j].ID
		if a.Kind != b.Kind {
			return a.Kind == StaticID
		}
		if a.Kind == DynamicID {
			return a.Stamp < b.Stamp
		}
		// Static against static keeps the original definition order.
		return false
	})

	sort.SliceStable(unpaid, func(i, j int) bool {
		return DateKey(unpaid[i].Date) < DateKey(unpaid[j].Date)
	})

	return append(paid, unpaid...)
}
