// Package store owns the expense collection and mirrors it to a blob store
// after every mutation.
//
// A Store is single-writer: it does no locking, and callers that share one
// across goroutines must serialize access themselves.
package store

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/tally/internal/blob"
	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// ChangeKind identifies the mutation behind a Change.
type ChangeKind string

const (
	ChangeAdd    ChangeKind = "add"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Change describes a completed mutation.
type Change struct {
	Kind ChangeKind
	ID   string
}

// Store is the authoritative in-memory expense collection.
type Store struct {
	blobs      blob.Store
	log        logrus.FieldLogger
	expenses   []model.Expense
	listeners  map[int]func(Change)
	nextListen int
	persistErr error
	newID      func() (string, error)
}

// New creates an empty Store backed by blobs. Call Load to rehydrate it.
func New(blobs blob.Store, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{
		blobs:     blobs,
		log:       log.WithField("component", "store"),
		listeners: make(map[int]func(Change)),
		newID:     id.New,
	}
}

// Load replaces the collection with the stored snapshot. A missing, empty or
// malformed snapshot leaves the collection empty; malformed data is logged
// and discarded. Only a failure to read the blob store is returned.
func (s *Store) Load() error {
	s.expenses = nil

	data, err := s.blobs.Get(SnapshotKey)
	if errors.Is(err, blob.ErrNotFound) {
		s.log.Debug("no snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	expenses, err := DecodeSnapshot(data)
	if err != nil {
		s.log.WithError(err).WithField("key", SnapshotKey).Warn("discarding malformed snapshot")
		return nil
	}

	s.expenses = expenses
	s.log.WithField("count", len(expenses)).Debug("snapshot loaded")
	return nil
}

// All returns a copy of the collection. The order carries no meaning.
func (s *Store) All() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Get returns the record with the given ID.
func (s *Store) Get(expenseID string) (model.Expense, bool) {
	i := s.indexOf(expenseID)
	if i < 0 {
		return model.Expense{}, false
	}
	return s.expenses[i], true
}

// Add validates p, appends a new record with a fresh ID and returns the ID.
func (s *Store) Add(p Params) (string, error) {
	e, err := p.parse()
	if err != nil {
		return "", err
	}

	newID, err := s.newID()
	if err != nil {
		return "", err
	}
	if s.indexOf(newID) >= 0 {
		return "", fmt.Errorf("generated id %q already in use", newID)
	}
	e.ID = newID

	s.expenses = append(s.expenses, e)
	s.persist()
	s.notify(Change{Kind: ChangeAdd, ID: newID})
	return newID, nil
}

// Update replaces every field of the record expenseID except the ID.
func (s *Store) Update(expenseID string, p Params) error {
	e, err := p.parse()
	if err != nil {
		return err
	}

	i := s.indexOf(expenseID)
	if i < 0 {
		return &NotFoundError{ID: expenseID}
	}
	e.ID = expenseID

	s.expenses[i] = e
	s.persist()
	s.notify(Change{Kind: ChangeUpdate, ID: expenseID})
	return nil
}

// Delete removes the record expenseID.
func (s *Store) Delete(expenseID string) error {
	i := s.indexOf(expenseID)
	if i < 0 {
		return &NotFoundError{ID: expenseID}
	}

	// Build a new slice so copies handed out by All never alias it.
	next := make([]model.Expense, 0, len(s.expenses)-1)
	next = append(next, s.expenses[:i]...)
	next = append(next, s.expenses[i+1:]...)
	s.expenses = next

	s.persist()
	s.notify(Change{Kind: ChangeDelete, ID: expenseID})
	return nil
}

// PersistErr returns the error from the most recent snapshot write, or nil
// if it succeeded.
func (s *Store) PersistErr() error {
	return s.persistErr
}

// Subscribe registers fn to run after each mutation. The returned func
// removes it.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	key := s.nextListen
	s.nextListen++
	s.listeners[key] = fn
	return func() { delete(s.listeners, key) }
}

// persist writes the full collection. The in-memory state stays
// authoritative, so a failed write is logged and recorded, not returned.
func (s *Store) persist() {
	data, err := EncodeSnapshot(s.expenses)
	if err == nil {
		err = s.blobs.Put(SnapshotKey, data)
	}
	if err != nil {
		s.persistErr = fmt.Errorf("writing snapshot: %w", err)
		s.log.WithError(err).WithField("key", SnapshotKey).Error("snapshot write failed")
		return
	}
	s.persistErr = nil
}

func (s *Store) notify(c Change) {
	for _, fn := range s.listeners {
		fn(c)
	}
}

func (s *Store) indexOf(expenseID string) int {
	for i, e := range s.expenses {
		if e.ID == expenseID {
			return i
		}
	}
	return -1
}
