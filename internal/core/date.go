package core

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted textual date form (dd-mm-yyyy).
const DateLayout = "02-01-2006"

// ParseDate converts a dd-mm-yyyy string to a Date. Any other format is a
// parse failure wrapping ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

// String renders the date back in the dd-mm-yyyy wire form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Between reports whether d falls within [start, end], inclusive on both
// ends. Comparison is at day precision.
func (d Date) Between(start, end Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}
