// Package report derives summary statistics and per-country and
// per-category breakdowns from transaction sequences.
package report

import (
	"sort"
	"strings"

	"tradeledger/internal/core"
)

// Summary holds the count, total and average value of a sequence.
type Summary struct {
	Count   int
	Total   float64
	Average float64
}

// TotalValue sums the values of a sequence; 0 for an empty one.
func TotalValue(records []core.Transaction) float64 {
	var total float64
	for _, t := range records {
		total += t.Value
	}
	return total
}

// Summarize computes count, total and average. An empty sequence yields
// all zeros; the average is never a division by zero.
func Summarize(records []core.Transaction) Summary {
	s := Summary{
		Count: len(records),
		Total: TotalValue(records),
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}

// CountByDirection partitions the transactions of one country by
// direction. Country matching is case-insensitive and exact; rows
// without a recognizable direction are ignored.
func CountByDirection(records []core.Transaction, country string) (imports, exports int) {
	country = strings.TrimSpace(country)
	for _, t := range records {
		if !strings.EqualFold(t.Country, country) {
			continue
		}
		switch t.Direction {
		case core.Import:
			imports++
		case core.Export:
			exports++
		}
	}
	return imports, exports
}

// CategoryBreakdown counts one country's imports and exports per product
// category. Only categories in the enumerated set are counted;
// transactions carrying any other category value are excluded entirely,
// not merely hidden from display.
func CategoryBreakdown(records []core.Transaction, country string) (imports, exports map[string]int) {
	country = strings.TrimSpace(country)
	imports = make(map[string]int)
	exports = make(map[string]int)
	for _, t := range records {
		if !strings.EqualFold(t.Country, country) {
			continue
		}
		if !core.KnownCategory(t.Category) {
			continue
		}
		switch t.Direction {
		case core.Import:
			imports[t.Category]++
		case core.Export:
			exports[t.Category]++
		}
	}
	return imports, exports
}

// Tally pairs a name with a count. Tally slices keep first-appearance
// order so that Highest is deterministic.
type Tally struct {
	Name  string
	Count int
}

// TotalsByCountry counts imports and exports per country in a single
// pass. Every country appearing in the data gets an entry in both
// results, ordered by first appearance. Country names are distinct
// case-sensitively, matching the dataset convention.
func TotalsByCountry(records []core.Transaction) (imports, exports []Tally) {
	index := make(map[string]int, len(records))
	for _, t := range records {
		i, seen := index[t.Country]
		if !seen {
			i = len(imports)
			index[t.Country] = i
			imports = append(imports, Tally{Name: t.Country})
			exports = append(exports, Tally{Name: t.Country})
		}
		switch t.Direction {
		case core.Import:
			imports[i].Count++
		case core.Export:
			exports[i].Count++
		}
	}
	return imports, exports
}

// Highest returns the tally with the maximum count. On an exact tie the
// first-encountered maximum in scan order wins. The second result is
// false for an empty input.
func Highest(tallies []Tally) (Tally, bool) {
	if len(tallies) == 0 {
		return Tally{}, false
	}
	best := tallies[0]
	for _, t := range tallies[1:] {
		if t.Count > best.Count {
			best = t
		}
	}
	return best, true
}

// UniqueCountries returns the distinct country names in ascending
// lexicographic order. Distinctness is case-sensitive.
func UniqueCountries(records []core.Transaction) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, t := range records {
		if _, ok := seen[t.Country]; ok {
			continue
		}
		seen[t.Country] = struct{}{}
		out = append(out, t.Country)
	}
	sort.Strings(out)
	return out
}
