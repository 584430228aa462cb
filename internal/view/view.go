// Package view maps collections plus a filter or sort selection to display rows.
//
// Everything here is a pure function of its arguments: inputs are never
// mutated and no surface-specific markup is produced. The TUI and the CLI
// style the rows themselves.
package view

import (
	"fmt"
	"time"

	"github.com/idilsaglam/nasiya/internal/money"
)

var monthsShort = [...]string{"yan", "fev", "mar", "apr", "may", "iyn", "iyl", "avg", "sen", "okt", "noy", "dek"}

// FormatDate renders t in the Uzbek short form, e.g. "16-okt, 2026".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d-%s, %d", t.Day(), monthsShort[t.Month()-1], t.Year())
}

// Amount renders a whole amount with its unit label: "3 000 so'm".
func Amount(n int64) string {
	return money.WithUnit(money.FormatInt(n))
}
