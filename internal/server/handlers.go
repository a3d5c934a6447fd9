package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tally/internal/aggregate"
	"github.com/cleared-dev/tally/internal/categories"
	"github.com/cleared-dev/tally/internal/filter"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/store"
)

// ExpensesListResponse represents the response for GET /api/expenses.
type ExpensesListResponse struct {
	Expenses []model.Expense `json:"expenses"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// TotalsResponse represents the response for GET /api/totals.
type TotalsResponse struct {
	Total      decimal.Decimal           `json:"total"`
	Categories []aggregate.CategoryTotal `json:"categories"`
}

// expenseRequest is the body of POST and PUT. amount may be a JSON number or
// a string.
type expenseRequest struct {
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

func (req expenseRequest) params() store.Params {
	amount := strings.TrimSpace(string(req.Amount))
	var s string
	if err := json.Unmarshal(req.Amount, &s); err == nil {
		amount = s
	} else if amount == "null" {
		amount = ""
	}
	return store.Params{
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		Date:        req.Date,
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	persistErr := s.store.PersistErr()
	s.mu.Unlock()

	if persistErr != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  persistErr.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// visible applies the category and range query parameters.
func (s *Server) visible(r *http.Request) ([]model.Expense, error) {
	q := r.URL.Query()
	dateRange, err := filter.ParseDateRange(q.Get("range"))
	if err != nil {
		return nil, err
	}
	category := q.Get("category")
	if category == "" {
		category = filter.AllCategories
	}

	s.mu.Lock()
	all := s.store.All()
	s.mu.Unlock()

	return filter.SelectVisibleAt(all, category, dateRange, s.now()), nil
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	records, err := s.visible(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ExpensesListResponse{
		Expenses: aggregate.SortedByDateDescending(records),
		Count:    len(records),
		Total:    aggregate.Total(records),
	})
}

func (s *Server) getExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	e, ok := s.store.Get(id)
	s.mu.Unlock()

	if !ok {
		writeJSONError(w, http.StatusNotFound, "not_found", "Expense not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	p := req.params()
	if strings.TrimSpace(p.Date) == "" {
		p.Date = model.DateOf(s.now()).String()
	}

	s.mu.Lock()
	id, err := s.store.Add(p)
	s.mu.Unlock()

	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.log.WithField("id", id).Debug("expense created")
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	s.mu.Lock()
	err := s.store.Update(id, req.params())
	s.mu.Unlock()

	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	err := s.store.Delete(id)
	s.mu.Unlock()

	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) totals(w http.ResponseWriter, r *http.Request) {
	records, err := s.visible(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, TotalsResponse{
		Total:      aggregate.Total(records),
		Categories: aggregate.CategoryTotals(records),
	})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]categories.Info{
		"categories": s.categories.All(),
	})
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	var nferr *store.NotFoundError
	switch {
	case errors.As(err, &verr):
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", verr.Error())
	case errors.As(err, &nferr):
		writeJSONError(w, http.StatusNotFound, "not_found", nferr.Error())
	default:
		s.log.WithError(err).Error("store operation failed")
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Internal error")
	}
}
