// Package query implements pure filtering and sorting over transaction
// sequences. Functions here never mutate their input; they operate on
// snapshots handed out by the store.
package query

import (
	"sort"
	"strings"

	"tradeledger/internal/core"
)

// DateRange bounds a filter by calendar date, inclusive on both ends.
type DateRange struct {
	Start core.Date
	End   core.Date
}

// Criteria is a set of independently optional constraints combined with
// logical AND. Fields are pointers so that absence is a distinct state:
// a MinValue of 0 is a real floor, not a skipped filter.
type Criteria struct {
	Dates    *DateRange
	Country  *string
	Product  *string
	MinValue *float64
	MaxValue *float64
}

// String returns a pointer to s, for building criteria inline.
func String(s string) *string { return &s }

// Float returns a pointer to v, for building criteria inline.
func Float(v float64) *float64 { return &v }

// Dates returns an inclusive date range bound.
func Dates(start, end core.Date) *DateRange {
	return &DateRange{Start: start, End: end}
}

// Filter returns the transactions matching every provided criterion,
// preserving input order. With no criteria set the result equals the
// input. An empty result is valid and distinct from "no filter
// requested".
func Filter(records []core.Transaction, c Criteria) []core.Transaction {
	out := make([]core.Transaction, 0, len(records))
	for _, t := range records {
		if c.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (c Criteria) matches(t core.Transaction) bool {
	if c.Dates != nil && !t.Date.Between(c.Dates.Start, c.Dates.End) {
		return false
	}
	if c.Country != nil && !strings.EqualFold(t.Country, *c.Country) {
		return false
	}
	if c.Product != nil && !strings.EqualFold(t.Product, *c.Product) {
		return false
	}
	if c.MinValue != nil && t.Value < *c.MinValue {
		return false
	}
	if c.MaxValue != nil && t.Value > *c.MaxValue {
		return false
	}
	return true
}

// SortByValue returns a new sequence sorted by value. The sort is
// stable: equal values keep their input order.
func SortByValue(records []core.Transaction, descending bool) []core.Transaction {
	out := append([]core.Transaction(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Value > out[j].Value
		}
		return out[i].Value < out[j].Value
	})
	return out
}
