// Package filter selects the expenses visible under a category filter and a
// date-range filter.
package filter

import (
	"fmt"
	"time"

	"github.com/cleared-dev/tally/internal/model"
)

// AllCategories is the category filter that matches every record.
const AllCategories = "all"

// WeekStart is the first day of the week used by RangeThisWeek.
const WeekStart = time.Sunday

// DateRange narrows records by calendar date relative to today.
type DateRange string

const (
	RangeAll       DateRange = "all"
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "thisWeek"
	RangeThisMonth DateRange = "thisMonth"
)

// DateRanges lists the supported ranges.
var DateRanges = []DateRange{RangeAll, RangeToday, RangeThisWeek, RangeThisMonth}

// ParseDateRange converts a range name; the empty string means RangeAll.
func ParseDateRange(s string) (DateRange, error) {
	if s == "" {
		return RangeAll, nil
	}
	for _, r := range DateRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown date range %q (want one of all, today, thisWeek, thisMonth)", s)
}

// SelectVisible returns the records passing both filters, in input order.
// Today's date is read once from the local clock.
func SelectVisible(records []model.Expense, category string, dateRange DateRange) []model.Expense {
	return SelectVisibleAt(records, category, dateRange, time.Now())
}

// SelectVisibleAt is SelectVisible with an explicit current time.
func SelectVisibleAt(records []model.Expense, category string, dateRange DateRange, now time.Time) []model.Expense {
	today := model.DateOf(now)
	out := make([]model.Expense, 0, len(records))
	for _, e := range records {
		if MatchesCategory(e, category) && MatchesRange(e, dateRange, today) {
			out = append(out, e)
		}
	}
	return out
}

// MatchesCategory reports whether e passes the category filter. Matching is
// exact and case-sensitive.
func MatchesCategory(e model.Expense, category string) bool {
	return category == AllCategories || string(e.Category) == category
}

// MatchesRange reports whether e passes dateRange given today's date.
// Unknown ranges pass everything.
func MatchesRange(e model.Expense, dateRange DateRange, today model.Date) bool {
	switch dateRange {
	case RangeToday:
		return e.Date.Equal(today)
	case RangeThisWeek:
		return !e.Date.Before(StartOfWeek(today))
	case RangeThisMonth:
		return e.Date.Year() == today.Year() && e.Date.Month() == today.Month()
	default:
		return true
	}
}

// StartOfWeek returns the most recent WeekStart on or before d.
func StartOfWeek(d model.Date) model.Date {
	offset := (int(d.Weekday()) - int(WeekStart) + 7) % 7
	return d.AddDays(-offset)
}
