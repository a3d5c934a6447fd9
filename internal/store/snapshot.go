package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// SnapshotKey is the blob key holding the expense snapshot.
const SnapshotKey = "expenses"

// snapshotRecord is the stored shape of one expense. id and amount are kept
// raw so both string and number spellings decode.
type snapshotRecord struct {
	ID          json.RawMessage `json:"id"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// EncodeSnapshot serializes the full collection as a JSON array.
func EncodeSnapshot(expenses []model.Expense) ([]byte, error) {
	records := make([]snapshotRecord, len(expenses))
	for i, e := range expenses {
		rawID, err := json.Marshal(e.ID)
		if err != nil {
			return nil, fmt.Errorf("encoding id %q: %w", e.ID, err)
		}
		records[i] = snapshotRecord{
			ID:          rawID,
			Description: e.Description,
			Amount:      json.RawMessage(e.Amount.String()),
			Category:    string(e.Category),
			Date:        e.Date.String(),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot. Empty input and JSON null decode to an
// empty collection. Any malformed record makes the whole snapshot invalid and
// is reported as a *DecodeError.
func DecodeSnapshot(data []byte) ([]model.Expense, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var records []snapshotRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &DecodeError{Err: err}
	}

	expenses := make([]model.Expense, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		e, err := decodeRecord(rec)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("record %d: %w", i, err)}
		}
		if seen[e.ID] {
			return nil, &DecodeError{Err: fmt.Errorf("record %d: duplicate id %q", i, e.ID)}
		}
		seen[e.ID] = true
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func decodeRecord(rec snapshotRecord) (model.Expense, error) {
	expenseID, err := decodeID(rec.ID)
	if err != nil {
		return model.Expense{}, err
	}

	if len(rec.Amount) == 0 || bytes.Equal(rec.Amount, []byte("null")) {
		return model.Expense{}, errors.New("missing amount")
	}
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(rec.Amount); err != nil {
		return model.Expense{}, fmt.Errorf("amount: %w", err)
	}
	if amount.IsNegative() {
		return model.Expense{}, fmt.Errorf("negative amount %s", amount)
	}

	if strings.TrimSpace(rec.Description) == "" {
		return model.Expense{}, errors.New("empty description")
	}
	if strings.TrimSpace(rec.Category) == "" {
		return model.Expense{}, errors.New("empty category")
	}

	date, err := model.ParseDate(rec.Date)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		ID:          expenseID,
		Description: rec.Description,
		Amount:      amount,
		Category:    model.Category(rec.Category),
		Date:        date,
	}, nil
}

// decodeID accepts any non-blank JSON string or a legacy numeric ID.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", errors.New("missing id")
	}
	if raw[0] != '"' {
		if !id.Valid(string(raw)) {
			return "", fmt.Errorf("invalid id %s", raw)
		}
		return string(raw), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("id: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		return "", errors.New("empty id")
	}
	return s, nil
}
