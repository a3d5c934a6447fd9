package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

func sample() []model.Expense {
	return []model.Expense{
		{
			ID:          "0192a3b4-0000-7000-8000-000000000001",
			Description: "Coffee, large",
			Amount:      decimal.RequireFromString("4.5"),
			Category:    model.CategoryFood,
			Date:        model.NewDate(2024, time.March, 1),
		},
		{
			ID:          "17",
			Description: `Bus "express"`,
			Amount:      decimal.RequireFromString("1234.5"),
			Category:    model.CategoryTransportation,
			Date:        model.NewDate(2024, time.February, 29),
		},
	}
}

func TestWriteExpenses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, sample()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, `0192a3b4-0000-7000-8000-000000000001,2024-03-01,"Coffee, large",4.50,Food`, lines[1])
	assert.Equal(t, `17,2024-02-29,"Bus ""express""",1234.50,Transportation`, lines[2])
}

func TestReadExpenses_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, sample()))

	got, err := ReadExpenses(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i, want := range sample() {
		assert.Equal(t, want.ID, got[i].ID)
		assert.Equal(t, want.Description, got[i].Description)
		assert.True(t, want.Amount.Equal(got[i].Amount), "amount row %d", i)
		assert.Equal(t, want.Category, got[i].Category)
		assert.True(t, want.Date.Equal(got[i].Date), "date row %d", i)
	}
}

func TestReadExpenses_Empty(t *testing.T) {
	got, err := ReadExpenses(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadExpenses(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadExpenses_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"wrong header", "a,b,c,d,e\n", "unexpected header"},
		{"bad date", Header + "\n1,03/01/2024,x,1.00,Food\n", "parsing date"},
		{"bad amount", Header + "\n1,2024-03-01,x,abc,Food\n", "parsing amount"},
		{"short row", Header + "\n1,2024-03-01,x\n", "reading expense CSV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadExpenses(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUnmarshalExpense_RowNumberInError(t *testing.T) {
	data := Header + "\n1,2024-03-01,ok,1.00,Food\n2,2024-03-01,bad,x,Food\n"
	_, err := ReadExpenses(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
