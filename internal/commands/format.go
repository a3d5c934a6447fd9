package commands

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

const displayDateLayout = "Jan 2, 2006"

// formatAmount renders d with two decimals and thousands separators,
// e.g. $1,234.50.
func formatAmount(symbol string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + symbol + fixed
	}
	return sign + symbol + humanize.BigComma(n) + "." + frac
}

func formatDate(d model.Date) string {
	return d.Format(displayDateLayout)
}
