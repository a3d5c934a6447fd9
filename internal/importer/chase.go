package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/store"
)

// ChaseParser parses Chase bank checking CSV exports. Only money going out
// becomes an expense; deposits and credits are skipped.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns one Params per debit row, filed under
// Other with the absolute amount.
func (p *ChaseParser) Parse(r io.Reader) ([]store.Params, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var params []store.Params
	for i, rec := range records[1:] {
		pr, debit, err := parseChaseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if debit {
			params = append(params, pr)
		}
	}
	return params, nil
}

func parseChaseRow(rec []string) (store.Params, bool, error) {
	date, err := time.Parse(chaseDateFormat, strings.TrimSpace(rec[chaseColDate]))
	if err != nil {
		return store.Params{}, false, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[chaseColAmount]))
	if err != nil {
		return store.Params{}, false, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}
	if !amount.IsNegative() {
		return store.Params{}, false, nil
	}

	return store.Params{
		Description: strings.TrimSpace(rec[chaseColDesc]),
		Amount:      amount.Abs().StringFixed(2),
		Category:    string(model.CategoryOther),
		Date:        model.DateOf(date).String(),
	}, true, nil
}
