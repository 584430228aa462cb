package view

import (
	"fmt"
	"time"

	"github.com/idilsaglam/nasiya/internal/ledger"
	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/money"
)

const (
	DebtPlaceholder = "Hozircha nasiyalar yo'q"
	OverdueBadge    = "Muddat o'tgan"
)

type DebtRow struct {
	ID         int64
	Title      string
	Customer   string
	Product    string
	Qty        string
	Price      string
	Total      string
	Due        string
	Paid       bool
	Overdue    bool
	ToggleHint string
}

type SortTab struct {
	Key    model.SortKey
	Label  string
	Active bool
}

type DebtSummary struct {
	Pending   string // formatted, no unit
	Total     string
	Paid      string
	Count     int
	Customers int
	Overdue   int
}

type DebtPage struct {
	Rows        []DebtRow
	Tabs        []SortTab
	Summary     DebtSummary
	Empty       bool
	Placeholder string
}

// Debts builds the debt page from a sorted snapshot; debts keeps its order.
func Debts(debts []model.Debt, key model.SortKey, now time.Time) DebtPage {
	sorted := ledger.SortDebts(debts, key)
	sum := ledger.Summarize(debts, now)

	page := DebtPage{
		Rows: make([]DebtRow, 0, len(sorted)),
		Summary: DebtSummary{
			Pending:   money.Format(sum.Pending),
			Total:     money.Format(sum.Total),
			Paid:      money.Format(sum.Paid),
			Count:     sum.Count,
			Customers: sum.Customers,
			Overdue:   sum.Overdue,
		},
		Empty: len(sorted) == 0,
	}
	if page.Empty {
		page.Placeholder = DebtPlaceholder
	}
	for _, d := range sorted {
		hint := "To'langan deb belgilash"
		if d.Paid {
			hint = "To'lanmagan deb belgilash"
		}
		page.Rows = append(page.Rows, DebtRow{
			ID:         d.ID,
			Title:      d.Customer + " - " + d.Product,
			Customer:   d.Customer,
			Product:    d.Product,
			Qty:        fmt.Sprintf("%d ta", d.Qty),
			Price:      Amount(d.Price),
			Total:      Amount(d.Total),
			Due:        FormatDate(d.DueDate.Time()),
			Paid:       d.Paid,
			Overdue:    ledger.IsOverdue(d, now),
			ToggleHint: hint,
		})
	}
	page.Tabs = []SortTab{
		{Key: model.SortByDate, Label: fmt.Sprintf("Sana bo'yicha (%d)", len(debts)), Active: key != model.SortByAmount},
		{Key: model.SortByAmount, Label: "Summa bo'yicha", Active: key == model.SortByAmount},
	}
	return page
}
