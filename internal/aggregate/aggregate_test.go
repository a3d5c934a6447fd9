package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id, amount, category, date string) model.Expense {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Expense{ID: id, Description: id, Amount: dec(amount), Category: model.Category(category), Date: d}
}

func summary(totals []CategoryTotal) []string {
	out := []string{}
	for _, ct := range totals {
		out = append(out, string(ct.Category)+"="+ct.Total.StringFixed(2))
	}
	return out
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(nil).IsZero())
	assert.True(t, Total([]model.Expense{}).IsZero())

	records := []model.Expense{
		expense("a", "0.10", "Food", "2024-03-01"),
		expense("b", "0.20", "Food", "2024-03-01"),
	}
	assert.Equal(t, "0.30", Total(records).StringFixed(2), "exact decimal sum")
}

func TestTotal_ConcatenationIsAdditive(t *testing.T) {
	a := []model.Expense{
		expense("a1", "19.99", "Food", "2024-03-01"),
		expense("a2", "0.01", "Shopping", "2024-03-02"),
	}
	b := []model.Expense{
		expense("b1", "1000", "Housing", "2024-03-01"),
		expense("b2", "3.333", "Other", "2024-03-03"),
	}
	joined := append(append([]model.Expense{}, a...), b...)
	assert.True(t, Total(joined).Equal(Total(a).Add(Total(b))))
}

func TestCategoryTotals_Scenario(t *testing.T) {
	records := []model.Expense{
		expense("coffee", "4.50", "Food", "2024-03-01"),
		expense("bus", "2.00", "Transportation", "2024-03-01"),
	}
	assert.Equal(t, "6.50", Total(records).StringFixed(2))
	assert.Equal(t, []string{"Food=4.50", "Transportation=2.00"}, summary(CategoryTotals(records)))
}

func TestCategoryTotals_SortedDescending(t *testing.T) {
	records := []model.Expense{
		expense("a", "5", "Food", "2024-03-01"),
		expense("b", "1200", "Housing", "2024-03-01"),
		expense("c", "30", "Utilities", "2024-03-01"),
		expense("d", "7", "Food", "2024-03-02"),
	}
	assert.Equal(t, []string{"Housing=1200.00", "Utilities=30.00", "Food=12.00"}, summary(CategoryTotals(records)))
}

func TestCategoryTotals_TiesKeepDeclarationOrder(t *testing.T) {
	records := []model.Expense{
		expense("a", "10", "Other", "2024-03-01"),
		expense("b", "10", "Healthcare", "2024-03-01"),
		expense("c", "10", "Food", "2024-03-01"),
		expense("d", "10", "Gifts", "2024-03-01"),
		expense("e", "10", "Shopping", "2024-03-01"),
	}
	assert.Equal(t,
		[]string{"Food=10.00", "Shopping=10.00", "Healthcare=10.00", "Other=10.00", "Gifts=10.00"},
		summary(CategoryTotals(records)))
}

func TestCategoryTotals_ExcludesZero(t *testing.T) {
	records := []model.Expense{
		expense("a", "0", "Food", "2024-03-01"),
		expense("b", "0.00", "Gifts", "2024-03-01"),
		expense("c", "2", "Other", "2024-03-01"),
	}
	assert.Equal(t, []string{"Other=2.00"}, summary(CategoryTotals(records)))
	assert.Empty(t, CategoryTotals(nil))
}

func TestCategoryTotals_SumEqualsTotal(t *testing.T) {
	records := []model.Expense{
		expense("a", "4.50", "Food", "2024-03-01"),
		expense("b", "2.25", "Transportation", "2024-03-01"),
		expense("c", "0", "Housing", "2024-03-01"),
		expense("d", "99.99", "Pets", "2024-03-01"),
		expense("e", "1.01", "Food", "2024-03-01"),
	}
	sum := decimal.Zero
	for _, ct := range CategoryTotals(records) {
		assert.False(t, ct.Total.IsZero())
		sum = sum.Add(ct.Total)
	}
	assert.True(t, sum.Equal(Total(records)))
}

func TestTop(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Housing", Total: dec("3")},
		{Category: "Food", Total: dec("2")},
		{Category: "Other", Total: dec("1")},
		{Category: "Shopping", Total: dec("0.5")},
	}
	assert.Len(t, Top(totals, 3), 3)
	assert.Equal(t, model.Category("Housing"), Top(totals, 3)[0].Category)
	assert.Len(t, Top(totals, 10), 4)
	assert.Empty(t, Top(totals, 0))
	assert.Empty(t, Top(totals, -1))
}

func TestShare(t *testing.T) {
	assert.Equal(t, "69.2", Share(dec("4.50"), dec("6.50")).String())
	assert.Equal(t, "100", Share(dec("2"), dec("2")).String())
	assert.True(t, Share(dec("1"), decimal.Zero).IsZero())
}

func TestSortedByDateDescending(t *testing.T) {
	records := []model.Expense{
		expense("old", "1", "Food", "2024-01-15"),
		expense("mid-1", "1", "Food", "2024-02-01"),
		expense("new", "1", "Food", "2024-03-01"),
		expense("mid-2", "1", "Food", "2024-02-01"),
		expense("mid-3", "1", "Food", "2024-02-01"),
	}
	got := SortedByDateDescending(records)

	var order []string
	for _, e := range got {
		order = append(order, e.ID)
	}
	assert.Equal(t, []string{"new", "mid-1", "mid-2", "mid-3", "old"}, order)

	require.Equal(t, "old", records[0].ID, "input must not be reordered")
	assert.Empty(t, SortedByDateDescending(nil))
}
