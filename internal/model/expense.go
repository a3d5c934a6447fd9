package model

import "github.com/shopspring/decimal"

// Expense is a single recorded expense.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // never negative
	Category    Category        `json:"category"`
	Date        Date            `json:"date"`
}
