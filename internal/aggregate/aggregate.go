// Package aggregate computes totals and display order over an already
// filtered set of expenses. All functions are pure.
package aggregate

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category model.Category  `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Total sums the amounts of records. The sum of no records is zero.
func Total(records []model.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range records {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// CategoryTotals sums amounts per category and returns the non-zero totals,
// largest first. Equal totals keep declaration order; unrecognized categories
// follow the fixed ones in order of first appearance.
func CategoryTotals(records []model.Expense) []CategoryTotal {
	order := slices.Clone(model.Categories)
	sums := make(map[model.Category]decimal.Decimal, len(order))
	for _, e := range records {
		if _, ok := sums[e.Category]; !ok && !e.Category.Known() {
			order = append(order, e.Category)
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for _, c := range order {
		sum, ok := sums[c]
		if !ok || sum.IsZero() {
			continue
		}
		totals = append(totals, CategoryTotal{Category: c, Total: sum})
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})
	return totals
}

// Top returns at most the first n entries of totals.
func Top(totals []CategoryTotal, n int) []CategoryTotal {
	if n < 0 {
		n = 0
	}
	if len(totals) > n {
		return totals[:n]
	}
	return totals
}

// Share returns part as a percentage of whole, rounded to one decimal place.
// A zero whole yields zero.
func Share(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(whole, 1)
}

// SortedByDateDescending returns a copy of records, most recent first.
// Records on the same date keep their relative order.
func SortedByDateDescending(records []model.Expense) []model.Expense {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b model.Expense) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}
