package report

import (
	"math"
	"testing"

	"tradeledger/internal/core"
)

func fixture() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Country: "USA", Product: "Electronics", Value: 1000, Date: core.NewDate(2021, 1, 1), Direction: core.Import, Category: "Electronics"},
		{ID: "2", Country: "Canada", Product: "Electronics", Value: 1500, Date: core.NewDate(2021, 1, 15), Direction: core.Export, Category: "Electronics"},
		{ID: "3", Country: "USA", Product: "Furniture", Value: 2000, Date: core.NewDate(2021, 1, 20), Direction: core.Export, Category: "Furniture"},
		{ID: "4", Country: "Mexico", Product: "Electronics", Value: 2500, Date: core.NewDate(2021, 1, 25), Direction: core.Import, Category: "Electronics"},
		{ID: "5", Country: "USA", Product: "Electronics", Value: 3000, Date: core.NewDate(2021, 1, 30), Direction: core.Import, Category: "Electronics"},
	}
}

func TestTotalValue(t *testing.T) {
	if got := TotalValue(nil); got != 0 {
		t.Fatalf("empty sequence: expected 0, got %v", got)
	}
	if got := TotalValue(fixture()); got != 10000 {
		t.Fatalf("expected 10000, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(fixture())
	if s.Count != 5 || s.Total != 10000 || s.Average != 2000 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Total != 0 || s.Average != 0 {
		t.Fatalf("empty summary should be all zeros, got %+v", s)
	}
	if math.IsNaN(s.Average) {
		t.Fatal("average of empty sequence must be 0, not NaN")
	}
}

func TestCountByDirection(t *testing.T) {
	imports, exports := CountByDirection(fixture(), "USA")
	if imports != 2 || exports != 1 {
		t.Fatalf("USA: expected 2 imports / 1 export, got %d/%d", imports, exports)
	}
	// Case-insensitive country matching, whitespace tolerated.
	imports, exports = CountByDirection(fixture(), " usa ")
	if imports != 2 || exports != 1 {
		t.Fatalf("usa: expected 2 imports / 1 export, got %d/%d", imports, exports)
	}
	imports, exports = CountByDirection(fixture(), "Atlantis")
	if imports != 0 || exports != 0 {
		t.Fatalf("unknown country should count nothing, got %d/%d", imports, exports)
	}
}

func TestCountByDirectionIgnoresUnknownDirections(t *testing.T) {
	records := []core.Transaction{
		{ID: "1", Country: "USA", Direction: core.Import},
		{ID: "2", Country: "USA", Direction: ""}, // no direction column
		{ID: "3", Country: "USA", Direction: core.Export},
	}
	imports, exports := CountByDirection(records, "USA")
	if imports != 1 || exports != 1 {
		t.Fatalf("expected 1/1, got %d/%d", imports, exports)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	imports, exports := CategoryBreakdown(fixture(), "usa")
	if imports["Electronics"] != 2 || len(imports) != 1 {
		t.Fatalf("unexpected imports: %v", imports)
	}
	if exports["Furniture"] != 1 || len(exports) != 1 {
		t.Fatalf("unexpected exports: %v", exports)
	}
}

func TestCategoryBreakdownExcludesUnknownCategories(t *testing.T) {
	records := []core.Transaction{
		{ID: "1", Country: "USA", Direction: core.Import, Category: "Electronics"},
		{ID: "2", Country: "USA", Direction: core.Import, Category: "Livestock"}, // not in the enum
		{ID: "3", Country: "USA", Direction: core.Export, Category: ""},
	}
	imports, exports := CategoryBreakdown(records, "USA")
	if len(imports) != 1 || imports["Electronics"] != 1 {
		t.Fatalf("unknown categories must be excluded from counting: %v", imports)
	}
	if len(exports) != 0 {
		t.Fatalf("unknown categories must be excluded from counting: %v", exports)
	}
}

func TestTotalsByCountry(t *testing.T) {
	imports, exports := TotalsByCountry(fixture())
	wantOrder := []string{"USA", "Canada", "Mexico"} // first appearance
	for i, name := range wantOrder {
		if imports[i].Name != name || exports[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s/%s", i, name, imports[i].Name, exports[i].Name)
		}
	}
	if imports[0].Count != 2 || exports[0].Count != 1 {
		t.Fatalf("USA: expected 2/1, got %d/%d", imports[0].Count, exports[0].Count)
	}
	if imports[1].Count != 0 || exports[1].Count != 1 {
		t.Fatalf("Canada: expected 0/1, got %d/%d", imports[1].Count, exports[1].Count)
	}
	if imports[2].Count != 1 || exports[2].Count != 0 {
		t.Fatalf("Mexico: expected 1/0, got %d/%d", imports[2].Count, exports[2].Count)
	}
}

func TestHighest(t *testing.T) {
	imports, _ := TotalsByCountry(fixture())
	best, ok := Highest(imports)
	if !ok || best.Name != "USA" || best.Count != 2 {
		t.Fatalf("expected USA with 2 imports, got %+v ok=%v", best, ok)
	}
}

// On an exact tie the first-encountered maximum wins.
func TestHighestTieBreak(t *testing.T) {
	tallies := []Tally{
		{Name: "Canada", Count: 3},
		{Name: "USA", Count: 3},
		{Name: "Mexico", Count: 1},
	}
	best, ok := Highest(tallies)
	if !ok || best.Name != "Canada" {
		t.Fatalf("expected first-encountered max Canada, got %+v", best)
	}
}

func TestHighestEmpty(t *testing.T) {
	if _, ok := Highest(nil); ok {
		t.Fatal("empty input should report no result")
	}
}

func TestUniqueCountries(t *testing.T) {
	got := UniqueCountries(fixture())
	want := []string{"Canada", "Mexico", "USA"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

// Distinctness is case-sensitive: "usa" and "USA" are separate entries.
func TestUniqueCountriesCaseSensitive(t *testing.T) {
	records := []core.Transaction{
		{ID: "1", Country: "USA"},
		{ID: "2", Country: "usa"},
		{ID: "3", Country: "USA"},
	}
	got := UniqueCountries(records)
	if len(got) != 2 || got[0] != "USA" || got[1] != "usa" {
		t.Fatalf("expected [USA usa], got %v", got)
	}
}
