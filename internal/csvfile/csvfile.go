// Package csvfile reads and writes the delimited transaction dataset.
//
// The input format is a header row followed by one row per transaction
// with fixed column positions. Later dataset variants append columns;
// the loader tolerates short rows for the optional tail columns and
// passes unknown descriptive columns through on the transaction.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"tradeledger/internal/core"
)

// Column positions in the dataset file.
const (
	colID = iota
	colCountry
	colProduct
	colDirection
	colQuantity
	colValue
	colDate
	colCategory
	colPort
	colCustomsCode
)

// ExportHeader is the header row of the export format, which carries
// only the five core columns.
var ExportHeader = []string{"Transaction_ID", "Country", "Product", "Value", "Date"}

// Load reads the dataset at path. The file is closed on every path.
func Load(path string) ([]core.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("Dataset loaded", "path", path, "transactions", len(records))
	return records, nil
}

// Read parses transactions from r. The first row is the header and is
// not interpreted. Parse failures carry the 1-based row number and wrap
// the core sentinel errors, so callers can tell bad input from an I/O
// failure.
func Read(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // dataset variants differ in column count
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}

	out := make([]core.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		t, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseRow(row []string) (core.Transaction, error) {
	if len(row) <= colDate {
		return core.Transaction{}, fmt.Errorf("expected at least %d columns, got %d", colDate+1, len(row))
	}

	value, err := core.ParseValue(field(row, colValue))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("value: %w", err)
	}
	date, err := core.ParseDate(field(row, colDate))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("date: %w", err)
	}

	t := core.Transaction{
		ID:        field(row, colID),
		Country:   field(row, colCountry),
		Product:   field(row, colProduct),
		Value:     value,
		Date:      date,
		Direction: core.ParseDirection(field(row, colDirection)),
		Category:  field(row, colCategory),
	}
	if q := field(row, colQuantity); q != "" {
		n, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("quantity: %w: %q", core.ErrInvalidValue, q)
		}
		t.Quantity = n
	}
	t.Attrs = passthrough(row)
	return t, nil
}

// passthrough collects columns the core has no use for.
func passthrough(row []string) map[string]string {
	var attrs map[string]string
	set := func(key, val string) {
		if val == "" {
			return
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[key] = val
	}
	set("port", field(row, colPort))
	set("customs_code", field(row, colCustomsCode))
	return attrs
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Export writes the 5-column export format to w.
func Export(w io.Writer, records []core.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range records {
		row := []string{t.ID, t.Country, t.Product, core.FormatValue(t.Value), t.Date.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write transaction %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes the export format to path, creating or truncating
// the file. The handle is released on every exit path, including a
// failure mid-write.
func ExportFile(path string, records []core.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Export(f, records); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	slog.Info("Transactions exported", "path", path, "transactions", len(records))
	return nil
}
