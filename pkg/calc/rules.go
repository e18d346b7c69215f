// Package calc holds the pure ledger rules: date sequencing and the
// freight × settled-tons amount computation. No storage, no side effects.
package calc

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// LoadDate is the derived loading date of row i (0-based): start + i days.
func LoadDate(start time.Time, i int) time.Time {
	return start.AddDate(0, 0, i)
}

// LoadDates derives the full loading-date column for n rows.
func LoadDates(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, LoadDate(start, i))
	}
	return out
}

// ParseDecimal reads a user-entered numeric cell. Blank or malformed input
// is a recoverable empty value, never an error: it reads as zero.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Amount computes freight × settleTons rounded to 2 places.
// Rounding is assumed half-up; shopspring Round is half-away-from-zero,
// which coincides on the non-negative inputs this ledger deals in.
func Amount(freight, settleTons string) decimal.Decimal {
	f, ok := ParseDecimal(freight)
	if !ok {
		return decimal.Zero.Round(2)
	}
	s, ok := ParseDecimal(settleTons)
	if !ok {
		return decimal.Zero.Round(2)
	}
	return f.Mul(s).Round(2)
}

// Format2 renders an amount or total with exactly two decimal places.
func Format2(d decimal.Decimal) string {
	return d.StringFixed(2)
}
