package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
)

// Params carries the user-supplied fields of an expense, as raw strings.
type Params struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// ParamsOf returns the Params that reproduce e's fields.
func ParamsOf(e model.Expense) Params {
	return Params{
		Description: e.Description,
		Amount:      e.Amount.String(),
		Category:    string(e.Category),
		Date:        e.Date.String(),
	}
}

// parse validates p and converts it to an Expense without an ID.
func (p Params) parse() (model.Expense, error) {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return model.Expense{}, &ValidationError{Field: "description", Reason: "required"}
	}

	amount, err := ParseAmount(p.Amount)
	if err != nil {
		return model.Expense{}, err
	}

	category := strings.TrimSpace(p.Category)
	if category == "" {
		return model.Expense{}, &ValidationError{Field: "category", Reason: "required"}
	}

	rawDate := strings.TrimSpace(p.Date)
	if rawDate == "" {
		return model.Expense{}, &ValidationError{Field: "date", Reason: "required"}
	}
	date, err := model.ParseDate(rawDate)
	if err != nil {
		return model.Expense{}, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	return model.Expense{
		Description: desc,
		Amount:      amount,
		Category:    model.Category(category),
		Date:        date,
	}, nil
}

// ParseAmount parses a non-negative decimal amount such as "4.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "required"}
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "not a number"}
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return amount, nil
}
