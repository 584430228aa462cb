// Package money parses and formats the integer amounts used by debt records.
//
// Amounts are whole units of the local currency. Formatting groups thousands
// with a single space and never embeds the currency; callers append Unit.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the label rendered after formatted amounts.
const Unit = "so'm"

var (
	ErrEmpty       = errors.New("empty amount")
	ErrNotInteger  = errors.New("amount must be a whole number")
	ErrOutOfRange  = errors.New("amount out of range")
	maxInt64       = decimal.NewFromInt(math.MaxInt64)
	minInt64       = decimal.NewFromInt(math.MinInt64)
	groupSeparator = " "
)

// ParseAmount reads a whole number, tolerating the same space grouping Format
// produces ("12 000"). Only an optional minus sign and digits are accepted, so
// "2.0" and "1e3" are rejected even though they denote integers.
func ParseAmount(s string) (int64, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, ErrEmpty
	}
	if !isDigits(strings.TrimPrefix(s, "-")) {
		return 0, fmt.Errorf("parse amount %q: %w", s, ErrNotInteger)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, ErrOutOfRange
	}
	return d.IntPart(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Product returns a*b, or ErrOutOfRange when the result does not fit int64.
func Product(a, b int64) (int64, error) {
	p := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b))
	if p.GreaterThan(maxInt64) || p.LessThan(minInt64) {
		return 0, ErrOutOfRange
	}
	return p.IntPart(), nil
}

// Sum adds amounts without overflow.
func Sum(amounts ...int64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromInt(a))
	}
	return total
}

// Format renders d rounded to whole units: 1234567 -> "1 234 567".
func Format(d decimal.Decimal) string {
	digits := d.Round(0).Abs().StringFixed(0)
	var b strings.Builder
	if d.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(groupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func FormatInt(n int64) string { return Format(decimal.NewFromInt(n)) }

// WithUnit appends the currency label: "1 000 so'm".
func WithUnit(formatted string) string { return formatted + " " + Unit }
