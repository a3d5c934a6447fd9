package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

// Wednesday 2024-03-13; the week started Sunday 2024-03-10.
var now = time.Date(2024, time.March, 13, 15, 4, 5, 0, time.Local)

func expense(id, category, date string) model.Expense {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Expense{
		ID:          id,
		Description: id,
		Amount:      decimal.NewFromInt(1),
		Category:    model.Category(category),
		Date:        d,
	}
}

func ids(records []model.Expense) []string {
	out := []string{}
	for _, e := range records {
		out = append(out, e.ID)
	}
	return out
}

func fixture() []model.Expense {
	return []model.Expense{
		expense("today-food", "Food", "2024-03-13"),
		expense("sunday-transport", "Transportation", "2024-03-10"),
		expense("saturday-food", "Food", "2024-03-09"),
		expense("month-start-housing", "Housing", "2024-03-01"),
		expense("last-month-food", "Food", "2024-02-28"),
		expense("last-year-food", "Food", "2023-03-13"),
		expense("future-food", "Food", "2024-04-02"),
		expense("odd-category", "Groceries", "2024-03-12"),
	}
}

func TestParseDateRange(t *testing.T) {
	for _, r := range DateRanges {
		got, err := ParseDateRange(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseDateRange("")
	require.NoError(t, err)
	assert.Equal(t, RangeAll, got)

	for _, bad := range []string{"week", "ThisWeek", "yesterday"} {
		_, err := ParseDateRange(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestSelectVisible_Identity(t *testing.T) {
	records := fixture()
	got := SelectVisibleAt(records, AllCategories, RangeAll, now)
	assert.Equal(t, records, got)

	assert.Equal(t, records, SelectVisible(records, AllCategories, RangeAll))
}

func TestSelectVisible_Empty(t *testing.T) {
	assert.Empty(t, SelectVisibleAt(nil, "Food", RangeToday, now))
}

func TestSelectVisible_DateRanges(t *testing.T) {
	tests := []struct {
		dateRange DateRange
		want      []string
	}{
		{RangeToday, []string{"today-food"}},
		{RangeThisWeek, []string{"today-food", "sunday-transport", "future-food", "odd-category"}},
		{RangeThisMonth, []string{"today-food", "sunday-transport", "saturday-food", "month-start-housing", "odd-category"}},
		{RangeAll, ids(fixture())},
	}
	for _, tt := range tests {
		got := SelectVisibleAt(fixture(), AllCategories, tt.dateRange, now)
		assert.Equal(t, tt.want, ids(got), "range %s", tt.dateRange)
	}
}

func TestSelectVisible_Category(t *testing.T) {
	got := SelectVisibleAt(fixture(), "Food", RangeAll, now)
	assert.Equal(t, []string{"today-food", "saturday-food", "last-month-food", "last-year-food", "future-food"}, ids(got))

	assert.Empty(t, SelectVisibleAt(fixture(), "food", RangeAll, now), "match is case-sensitive")
}

func TestSelectVisible_UnrecognizedCategory(t *testing.T) {
	got := SelectVisibleAt(fixture(), "Groceries", RangeAll, now)
	assert.Equal(t, []string{"odd-category"}, ids(got))
}

func TestSelectVisible_CombinesWithAnd(t *testing.T) {
	got := SelectVisibleAt(fixture(), "Food", RangeThisMonth, now)
	assert.Equal(t, []string{"today-food", "saturday-food"}, ids(got))

	got = SelectVisibleAt(fixture(), "Housing", RangeThisWeek, now)
	assert.Empty(t, got)
}

func TestSelectVisible_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	_ = SelectVisibleAt(records, "Food", RangeThisWeek, now)
	assert.Equal(t, fixture(), records)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-10", "2024-03-10"}, // Sunday
		{"2024-03-13", "2024-03-10"}, // Wednesday
		{"2024-03-16", "2024-03-10"}, // Saturday
		{"2024-03-01", "2024-02-25"}, // Friday, crosses month
		{"2025-01-01", "2024-12-29"}, // Wednesday, crosses year
	}
	for _, tt := range tests {
		d, err := model.ParseDate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, StartOfWeek(d).String(), "StartOfWeek(%s)", tt.date)
	}
}

func TestMatchesRange_TodayUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	late := time.Date(2024, time.March, 13, 23, 59, 0, 0, loc)

	assert.True(t, MatchesRange(expense("x", "Food", "2024-03-13"), RangeToday, model.DateOf(late)))
	assert.False(t, MatchesRange(expense("x", "Food", "2024-03-14"), RangeToday, model.DateOf(late)))
}
