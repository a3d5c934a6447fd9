package commands

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/tally/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"4.5", "$4.50"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"999.999", "$1,000.00"},
		{"-12", "-$12.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount("$", decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatAmount_Symbol(t *testing.T) {
	assert.Equal(t, "€10.00", formatAmount("€", decimal.NewFromInt(10)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 1, 2024", formatDate(model.NewDate(2024, time.March, 1)))
}
