// Package store holds the in-memory transaction collection.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"tradeledger/internal/core"
)

// Store is the ordered, mutable transaction collection. Insertion order
// is preserved; every transaction has a unique id. A single mutex
// serializes writers, and reads hand out copies so callers can filter
// and sort without holding the lock.
type Store struct {
	mu    sync.RWMutex
	items []core.Transaction
}

// New builds a store from an initial sequence, typically the loaded
// dataset. The uniqueness invariant is enforced on the way in: a
// duplicate id in the input is an error, not a silent overwrite.
func New(items []core.Transaction) (*Store, error) {
	s := &Store{items: make([]core.Transaction, 0, len(items))}
	for _, t := range items {
		if err := s.Add(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a new transaction. An id that collides with an existing
// transaction is rejected with core.ErrDuplicateID.
func (s *Store) Add(t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", core.ErrDuplicateID, t.ID)
	}
	s.items = append(s.items, t)
	slog.Debug("Transaction added", "id", t.ID, "country", t.Country, "value", t.Value)
	return nil
}

// Get returns the transaction with the given id. Id matching is exact
// and case-sensitive. The second result reports whether a match exists;
// not-found is normal control flow, not an error.
func (s *Store) Get(id string) (core.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return core.Transaction{}, false
}

// Patch carries the fields an update may overwrite. Nil fields are left
// unchanged; absence is explicit, so a zero value is a real overwrite.
type Patch struct {
	Country *string
	Product *string
	Value   *float64
	Date    *core.Date
}

// Update overwrites the provided fields on the transaction with the
// given id and reports whether a match was found.
func (s *Store) Update(id string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if p.Country != nil {
		s.items[i].Country = *p.Country
	}
	if p.Product != nil {
		s.items[i].Product = *p.Product
	}
	if p.Value != nil {
		s.items[i].Value = *p.Value
	}
	if p.Date != nil {
		s.items[i].Date = *p.Date
	}
	slog.Debug("Transaction updated", "id", id)
	return true
}

// Delete removes the transaction with the given id and reports whether
// a removal occurred.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	slog.Debug("Transaction deleted", "id", id)
	return true
}

// Snapshot returns a copy of the collection in insertion order. The
// query and reporting layers operate on snapshots, never on the backing
// slice.
func (s *Store) Snapshot() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Transaction(nil), s.items...)
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// indexOf is a linear scan; callers hold the lock. The dataset is small
// enough that no index is kept.
func (s *Store) indexOf(id string) int {
	for i, t := range s.items {
		if t.ID == id {
			return i
		}
	}
	return -1
}
