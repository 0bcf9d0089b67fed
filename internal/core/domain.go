package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Import Direction = "import"
	Export Direction = "export"
)

// Categories is the closed set of product categories used by breakdown
// reporting. Transactions carrying any other category value are excluded
// from category counts.
var Categories = []string{"Clothing", "Electronics", "Furniture", "Machinery", "Toys"}

type (
	// Direction says whether a transaction is an import or an export.
	// The zero value means the dataset row carried no recognizable
	// direction; reporting skips such rows.
	Direction string

	Date struct {
		time.Time
	}

	// Transaction is one trade record. ID, Country, Product, Value and
	// Date are the core fields; the rest are descriptive columns that
	// later dataset variants added. Columns the core has no use for are
	// passed through in Attrs.
	Transaction struct {
		ID        string
		Country   string
		Product   string
		Value     float64 // USD
		Date      Date
		Direction Direction
		Quantity  int64
		Category  string
		Attrs     map[string]string
	}
)

var (
	ErrEmptyID       = errors.New("empty transaction id")
	ErrDuplicateID   = errors.New("duplicate transaction id")
	ErrNegativeValue = errors.New("negative value")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidDate   = errors.New("invalid date")
)

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if t.Value < 0 {
		return ErrNegativeValue
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// ParseDirection maps free text to a Direction. Matching is
// case-insensitive; unrecognized input yields the zero Direction.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "import":
		return Import
	case "export":
		return Export
	}
	return ""
}

// KnownCategory reports whether c belongs to the enumerated category set.
// Membership is case-sensitive.
func KnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
