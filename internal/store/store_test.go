package store

import (
	"errors"
	"testing"

	"tradeledger/internal/core"
)

func seed() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Country: "USA", Product: "Electronics", Value: 1000, Date: core.NewDate(2021, 1, 1)},
		{ID: "2", Country: "Canada", Product: "Electronics", Value: 1500, Date: core.NewDate(2021, 1, 15)},
		{ID: "3", Country: "USA", Product: "Furniture", Value: 2000, Date: core.NewDate(2021, 1, 20)},
	}
}

func mustNew(t *testing.T) *Store {
	t.Helper()
	s, err := New(seed())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	dup := append(seed(), core.Transaction{ID: "2", Country: "Mexico", Product: "Toys", Value: 10, Date: core.NewDate(2021, 2, 1)})
	if _, err := New(dup); !errors.Is(err, core.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	s := mustNew(t)
	tx := core.Transaction{ID: "6", Country: "Brazil", Product: "Coffee", Value: 500, Date: core.NewDate(2021, 2, 1)}
	if err := s.Add(tx); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 transactions, got %d", s.Len())
	}
	got, ok := s.Get("6")
	if !ok || got.Country != "Brazil" {
		t.Fatalf("expected to read back added transaction, got %+v ok=%v", got, ok)
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := mustNew(t)
	err := s.Add(core.Transaction{ID: "1", Country: "UK", Product: "Books", Value: 5, Date: core.NewDate(2021, 3, 1)})
	if !errors.Is(err, core.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("store should be unchanged, got %d items", s.Len())
	}
}

func TestAddRejectsInvalidTransaction(t *testing.T) {
	s := mustNew(t)
	cases := []core.Transaction{
		{ID: "", Value: 1, Date: core.NewDate(2021, 1, 1)},
		{ID: "9", Value: -1, Date: core.NewDate(2021, 1, 1)},
		{ID: "9", Value: 1},
	}
	for i, tx := range cases {
		if err := s.Add(tx); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestGet(t *testing.T) {
	s := mustNew(t)
	tx, ok := s.Get("1")
	if !ok || tx.ID != "1" {
		t.Fatalf("expected transaction 1, got %+v ok=%v", tx, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected not-found for unknown id")
	}
	// Ids match case-sensitively.
	if err := s.Add(core.Transaction{ID: "a", Country: "UK", Product: "Books", Value: 1, Date: core.NewDate(2021, 1, 1)}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := s.Get("A"); ok {
		t.Fatal("id lookup should be case-sensitive")
	}
}

func TestUpdate(t *testing.T) {
	s := mustNew(t)
	country := "UK"
	product := "Books"
	value := 1200.0
	date := core.NewDate(2021, 1, 2)
	if !s.Update("1", Patch{Country: &country, Product: &product, Value: &value, Date: &date}) {
		t.Fatal("expected update to find transaction 1")
	}
	tx, _ := s.Get("1")
	if tx.Country != "UK" || tx.Product != "Books" || tx.Value != 1200.0 || tx.Date.String() != "02-01-2021" {
		t.Fatalf("update not applied: %+v", tx)
	}

	// Nil fields stay untouched.
	other := "Germany"
	if !s.Update("1", Patch{Country: &other}) {
		t.Fatal("expected update to find transaction 1")
	}
	tx, _ = s.Get("1")
	if tx.Country != "Germany" || tx.Product != "Books" || tx.Value != 1200.0 {
		t.Fatalf("partial update touched other fields: %+v", tx)
	}

	if s.Update("missing", Patch{Country: &other}) {
		t.Fatal("expected not-found for unknown id")
	}
}

func TestDelete(t *testing.T) {
	s := mustNew(t)
	if !s.Delete("1") {
		t.Fatal("expected delete to find transaction 1")
	}
	if _, ok := s.Get("1"); ok {
		t.Fatal("transaction 1 should be gone")
	}
	if s.Delete("1") {
		t.Fatal("second delete should report not-found")
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 transactions, got %d", s.Len())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := mustNew(t)
	snap := s.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(snap))
	}
	snap[0].Country = "mutated"
	tx, _ := s.Get("1")
	if tx.Country != "USA" {
		t.Fatal("mutating a snapshot must not touch the store")
	}
	// Insertion order is preserved.
	for i, want := range []string{"1", "2", "3"} {
		if snap[i].ID != want {
			t.Fatalf("position %d: expected id %s, got %s", i, want, snap[i].ID)
		}
	}
}
