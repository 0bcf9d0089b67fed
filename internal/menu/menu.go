// Package menu implements the interactive numbered command loop. It is
// the outer caller of the core packages: it parses user input, invokes
// store, query and report operations, and owns the "last filtered"
// view. The core stays free of menu state.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"tradeledger/internal/core"
	"tradeledger/internal/csvfile"
	applog "tradeledger/internal/log"
	"tradeledger/internal/query"
	"tradeledger/internal/report"
	"tradeledger/internal/store"
)

// Menu drives the interactive loop over an injected reader and writer.
type Menu struct {
	// ExportDir is where relative export filenames are written.
	ExportDir string

	in     *bufio.Scanner
	out    io.Writer
	store  *store.Store
	logger *applog.Logger

	filtered    []core.Transaction
	hasFiltered bool
}

func New(in io.Reader, out io.Writer, st *store.Store, logger *applog.Logger) *Menu {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Menu{
		ExportDir: ".",
		in:        bufio.NewScanner(in),
		out:       out,
		store:     st,
		logger:    logger.WithComponent(applog.ComponentMenu),
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Enter your choice (1-12): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			m.showHighest()
		case "2":
			m.showCountryCounts()
		case "3":
			m.showCategoryCounts()
		case "4":
			m.filter()
		case "5":
			m.sort()
		case "6":
			m.add()
		case "7":
			m.update()
		case "8":
			m.delete()
		case "9":
			m.search()
		case "10":
			m.summary()
		case "11":
			m.export()
		case "12":
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 12.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n--- Trade Insights ---")
	fmt.Fprintln(m.out, "1. View country with the highest number of imports or exports")
	fmt.Fprintln(m.out, "2. View number of imports and exports per country")
	fmt.Fprintln(m.out, "3. View all categories for a country's imports and exports")
	fmt.Fprintln(m.out, "\n--- Transaction Management ---")
	fmt.Fprintln(m.out, "4. Filter transactions")
	fmt.Fprintln(m.out, "5. Sort transactions by value")
	fmt.Fprintln(m.out, "6. Add a new transaction")
	fmt.Fprintln(m.out, "7. Update an existing transaction")
	fmt.Fprintln(m.out, "8. Delete a transaction")
	fmt.Fprintln(m.out, "9. Search transaction by ID")
	fmt.Fprintln(m.out, "10. View transaction summary")
	fmt.Fprintln(m.out, "11. Export transactions to CSV")
	fmt.Fprintln(m.out, "12. Exit")
}

// prompt prints the label and reads one trimmed line. The second result
// is false when input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printTransaction(t core.Transaction) {
	fmt.Fprintf(m.out, "Transaction ID: %s | Product: %s | Country: %s | Value: $%s | Date: %s\n",
		t.ID, t.Product, t.Country, core.FormatValue(t.Value), t.Date)
}

// showHighest handles choice 1.
func (m *Menu) showHighest() {
	imports, exports := report.TotalsByCountry(m.store.Snapshot())

	fmt.Fprintln(m.out, "\nChoose an option:")
	fmt.Fprintln(m.out, "1. Highest imports")
	fmt.Fprintln(m.out, "2. Highest exports")
	choice, ok := m.prompt("Enter the number corresponding to your choice: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		if best, ok := report.Highest(imports); ok {
			fmt.Fprintf(m.out, "\nCountry with the highest number of imports:\n  - %s\n  - Total imports: %d\n", best.Name, best.Count)
		} else {
			fmt.Fprintln(m.out, "No transactions loaded.")
		}
	case "2":
		if best, ok := report.Highest(exports); ok {
			fmt.Fprintf(m.out, "\nCountry with the highest number of exports:\n  - %s\n  - Total exports: %d\n", best.Name, best.Count)
		} else {
			fmt.Fprintln(m.out, "No transactions loaded.")
		}
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please enter 1 or 2.")
	}
}

// chooseCountry prints the numbered country list and reads a selection.
func (m *Menu) chooseCountry() (string, bool) {
	countries := report.UniqueCountries(m.store.Snapshot())
	if len(countries) == 0 {
		fmt.Fprintln(m.out, "No transactions loaded.")
		return "", false
	}

	fmt.Fprintln(m.out, "\nSelect a country from the list below:")
	for i, country := range countries {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, country)
	}

	input, ok := m.prompt("\nEnter the number corresponding to your choice: ")
	if !ok {
		return "", false
	}
	choice, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a number.")
		return "", false
	}
	if choice < 1 || choice > len(countries) {
		fmt.Fprintln(m.out, "Invalid choice. Please enter a valid number from the list.")
		return "", false
	}
	return countries[choice-1], true
}

// showCountryCounts handles choice 2.
func (m *Menu) showCountryCounts() {
	country, ok := m.chooseCountry()
	if !ok {
		return
	}
	imports, exports := report.CountByDirection(m.store.Snapshot(), country)
	fmt.Fprintf(m.out, "\n%s:\n  - Imports: %d\n  - Exports: %d\n", country, imports, exports)
}

// showCategoryCounts handles choice 3.
func (m *Menu) showCategoryCounts() {
	country, ok := m.chooseCountry()
	if !ok {
		return
	}
	imports, exports := report.CategoryBreakdown(m.store.Snapshot(), country)

	fmt.Fprintf(m.out, "\n%s:\n", country)
	fmt.Fprintln(m.out, "  Imports:")
	for _, category := range core.Categories {
		fmt.Fprintf(m.out, "  - %s: %d\n", category, imports[category])
	}
	fmt.Fprintln(m.out, "\n  Exports:")
	for _, category := range core.Categories {
		fmt.Fprintf(m.out, "  - %s: %d\n", category, exports[category])
	}
}

// filter handles choice 4. Blank answers leave a criterion absent; a
// malformed date or value aborts the operation instead of being coerced.
func (m *Menu) filter() {
	fmt.Fprintln(m.out, "\nFilter Transactions:")
	start, ok := m.prompt("Enter start date (dd-mm-yyyy) or press Enter to skip: ")
	if !ok {
		return
	}
	end, ok := m.prompt("Enter end date (dd-mm-yyyy) or press Enter to skip: ")
	if !ok {
		return
	}
	country, ok := m.prompt("Enter country or press Enter to skip: ")
	if !ok {
		return
	}
	product, ok := m.prompt("Enter product or press Enter to skip: ")
	if !ok {
		return
	}
	minValue, ok := m.prompt("Enter minimum value or press Enter to skip: ")
	if !ok {
		return
	}
	maxValue, ok := m.prompt("Enter maximum value or press Enter to skip: ")
	if !ok {
		return
	}

	var criteria query.Criteria
	if start != "" && end != "" {
		startDate, err := core.ParseDate(start)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid start date: %v\n", err)
			return
		}
		endDate, err := core.ParseDate(end)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid end date: %v\n", err)
			return
		}
		criteria.Dates = query.Dates(startDate, endDate)
	}
	if country != "" {
		criteria.Country = query.String(country)
	}
	if product != "" {
		criteria.Product = query.String(product)
	}
	if minValue != "" {
		v, err := core.ParseValue(minValue)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid minimum value: %v\n", err)
			return
		}
		criteria.MinValue = query.Float(v)
	}
	if maxValue != "" {
		v, err := core.ParseValue(maxValue)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid maximum value: %v\n", err)
			return
		}
		criteria.MaxValue = query.Float(v)
	}

	filtered := query.Filter(m.store.Snapshot(), criteria)
	m.logger.Info("Transactions filtered", applog.FieldOperation, applog.OpFilter, applog.FieldCount, len(filtered))
	if len(filtered) == 0 {
		fmt.Fprintln(m.out, "No transactions match the filters.")
		return
	}
	m.filtered = filtered
	m.hasFiltered = true
	fmt.Fprintf(m.out, "\nFiltered Transactions (%d results):\n", len(filtered))
	for _, t := range filtered {
		m.printTransaction(t)
	}
}

// chooseScope asks whether an operation applies to the filtered set or
// all transactions, returning the selected sequence.
func (m *Menu) chooseScope(question string) ([]core.Transaction, string, bool) {
	choice, ok := m.prompt(question)
	if !ok {
		return nil, "", false
	}
	switch choice {
	case "f":
		if !m.hasFiltered {
			fmt.Fprintln(m.out, "No filtered transactions exist. Run a filter first.")
			return nil, "", false
		}
		return m.filtered, "Filtered", true
	case "a":
		return m.store.Snapshot(), "All", true
	}
	fmt.Fprintln(m.out, "Invalid choice. Please enter 'f' or 'a'.")
	return nil, "", false
}

// sort handles choice 5.
func (m *Menu) sort() {
	fmt.Fprintln(m.out, "\nSort Transactions by Value:")
	records, scope, ok := m.chooseScope("Do you want to sort the filtered transactions (f) or all transactions (a)? ")
	if !ok {
		return
	}
	order, ok := m.prompt("Enter 'asc' for ascending or 'desc' for descending: ")
	if !ok {
		return
	}
	var descending bool
	switch order {
	case "asc":
		descending = false
	case "desc":
		descending = true
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please enter 'asc' or 'desc'.")
		return
	}

	sorted := query.SortByValue(records, descending)
	fmt.Fprintf(m.out, "\nSorted %s Transactions (%d results):\n", scope, len(sorted))
	for _, t := range sorted {
		m.printTransaction(t)
	}
}

// add handles choice 6.
func (m *Menu) add() {
	fmt.Fprintln(m.out, "\nAdd a New Transaction:")
	id, ok := m.prompt("Enter transaction ID: ")
	if !ok {
		return
	}
	product, ok := m.prompt("Enter product name: ")
	if !ok {
		return
	}
	country, ok := m.prompt("Enter country: ")
	if !ok {
		return
	}
	valueText, ok := m.prompt("Enter transaction value: ")
	if !ok {
		return
	}
	value, err := core.ParseValue(valueText)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid value: %v\n", err)
		return
	}
	dateText, ok := m.prompt("Enter transaction date (dd-mm-yyyy): ")
	if !ok {
		return
	}
	date, err := core.ParseDate(dateText)
	if err != nil {
		fmt.Fprintf(m.out, "Invalid date: %v\n", err)
		return
	}

	tx := core.Transaction{ID: id, Product: product, Country: country, Value: value, Date: date}
	if err := m.store.Add(tx); err != nil {
		fmt.Fprintf(m.out, "Could not add transaction: %v\n", err)
		return
	}
	m.logger.Info("Transaction added", applog.FieldOperation, applog.OpAdd, applog.FieldID, id)
	fmt.Fprintln(m.out, "Transaction added successfully!")
}

// update handles choice 7. Blank answers leave a field unchanged.
func (m *Menu) update() {
	fmt.Fprintln(m.out, "\nUpdate an Existing Transaction:")
	id, ok := m.prompt("Enter the transaction ID to update: ")
	if !ok {
		return
	}
	product, ok := m.prompt("Enter new product name (or press Enter to skip): ")
	if !ok {
		return
	}
	country, ok := m.prompt("Enter new country (or press Enter to skip): ")
	if !ok {
		return
	}
	valueText, ok := m.prompt("Enter new transaction value (or press Enter to skip): ")
	if !ok {
		return
	}
	dateText, ok := m.prompt("Enter new transaction date (dd-mm-yyyy) (or press Enter to skip): ")
	if !ok {
		return
	}

	var patch store.Patch
	if product != "" {
		patch.Product = &product
	}
	if country != "" {
		patch.Country = &country
	}
	if valueText != "" {
		value, err := core.ParseValue(valueText)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid value: %v\n", err)
			return
		}
		patch.Value = &value
	}
	if dateText != "" {
		date, err := core.ParseDate(dateText)
		if err != nil {
			fmt.Fprintf(m.out, "Invalid date: %v\n", err)
			return
		}
		patch.Date = &date
	}

	if m.store.Update(id, patch) {
		m.logger.Info("Transaction updated", applog.FieldOperation, applog.OpUpdate, applog.FieldID, id)
		fmt.Fprintln(m.out, "Transaction updated successfully!")
	} else {
		fmt.Fprintln(m.out, "Transaction not found.")
	}
}

// delete handles choice 8.
func (m *Menu) delete() {
	fmt.Fprintln(m.out, "\nDelete a Transaction:")
	id, ok := m.prompt("Enter the transaction ID to delete: ")
	if !ok {
		return
	}
	if m.store.Delete(id) {
		m.logger.Info("Transaction deleted", applog.FieldOperation, applog.OpDelete, applog.FieldID, id)
		fmt.Fprintln(m.out, "Transaction deleted successfully!")
	} else {
		fmt.Fprintln(m.out, "Transaction not found.")
	}
}

// search handles choice 9.
func (m *Menu) search() {
	fmt.Fprintln(m.out, "\nSearch Transaction by ID:")
	id, ok := m.prompt("Enter the transaction ID to search for: ")
	if !ok {
		return
	}
	if tx, found := m.store.Get(id); found {
		m.printTransaction(tx)
	} else {
		fmt.Fprintln(m.out, "Transaction not found.")
	}
}

// summary handles choice 10.
func (m *Menu) summary() {
	fmt.Fprintln(m.out, "\nTransaction Summary:")
	records, scope, ok := m.chooseScope("Do you want a summary of the filtered transactions (f) or all transactions (a)? ")
	if !ok {
		return
	}
	s := report.Summarize(records)
	label := ""
	if scope == "Filtered" {
		label = "Filtered "
	}
	fmt.Fprintf(m.out, "Total %sTransactions: %d\n", label, s.Count)
	fmt.Fprintf(m.out, "Total %sTrade Value: $%.2f\n", label, s.Total)
	fmt.Fprintf(m.out, "Average %sTrade Value: $%.2f\n", label, s.Average)
}

// export handles choice 11.
func (m *Menu) export() {
	fmt.Fprintln(m.out, "\nExport Transactions to CSV:")
	records, scope, ok := m.chooseScope("Do you want to export the filtered transactions (f) or all transactions (a)? ")
	if !ok {
		return
	}
	filename, ok := m.prompt("Enter the filename to save as (e.g., 'output.csv'): ")
	if !ok {
		return
	}
	if filename == "" {
		fmt.Fprintln(m.out, "Filename cannot be empty.")
		return
	}
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(m.ExportDir, filename)
	}
	if err := csvfile.ExportFile(filename, records); err != nil {
		fmt.Fprintf(m.out, "Export failed: %v\n", err)
		return
	}
	m.logger.Info("Transactions exported", applog.FieldOperation, applog.OpExport, applog.FieldPath, filename, applog.FieldCount, len(records))
	fmt.Fprintf(m.out, "%s transactions exported successfully to %s!\n", scope, filename)
}
