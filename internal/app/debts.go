package app

import (
	"context"
	"errors"
	"strconv"

	"github.com/idilsaglam/nasiya/internal/ledger"
	"github.com/idilsaglam/nasiya/internal/money"
)

// DebtForm holds raw input for a new debt, as typed.
type DebtForm struct {
	Customer string
	Product  string
	Qty      string
	Price    string
	DueDate  string
}

// DebtEditForm holds raw input for editing an existing debt. All four
// fields are committed together or not at all.
type DebtEditForm struct {
	Customer string
	Product  string
	Qty      string
	Price    string
}

// parseCount reads a form number; anything unparsable becomes 0 and is then
// rejected by validation with the field's own message.
func parseCount(s string) int64 {
	n, err := money.ParseAmount(s)
	if err != nil {
		return 0
	}
	return n
}

func (a *App) AddDebt(ctx context.Context, f DebtForm) (Notice, error) {
	now := a.stamp()
	id := a.nextID(now)
	in := ledger.DebtInput{
		Customer: f.Customer,
		Product:  f.Product,
		Qty:      parseCount(f.Qty),
		Price:    parseCount(f.Price),
		DueDate:  f.DueDate,
	}
	next, err := ledger.AddDebt(a.debts, id, in, now)
	if err != nil {
		field, _ := ledger.FieldOf(err)
		msg, ok := debtAddMessages[field]
		if !ok {
			msg = msgDebtEditInvalid
		}
		return warning(msg, field), nil
	}
	// The form's date input has today as its lower bound.
	if next[0].DueDate.Before(a.MinDueDate()) {
		return warning(msgDueBeforeToday, ledger.FieldDueDate), nil
	}
	if err := a.commitDebts(ctx, next); err != nil {
		return Notice{}, err
	}
	a.commitID(id)
	return success(msgDebtAdded), nil
}

func (a *App) ToggleDebtPaid(ctx context.Context, id int64) (Notice, error) {
	next, ok := ledger.ToggleDebtPaid(a.debts, id)
	if !ok {
		return warning(msgNotFound, ""), nil
	}
	if err := a.commitDebts(ctx, next); err != nil {
		return Notice{}, err
	}
	return info(msgDebtToggled), nil
}

func (a *App) EditDebt(ctx context.Context, id int64, f DebtEditForm) (Notice, error) {
	e := ledger.DebtEdit{
		Customer: f.Customer,
		Product:  f.Product,
		Qty:      parseCount(f.Qty),
		Price:    parseCount(f.Price),
	}
	next, err := ledger.EditDebt(a.debts, id, e)
	if errors.Is(err, ledger.ErrNotFound) {
		return warning(msgNotFound, ""), nil
	}
	if err != nil {
		field, _ := ledger.FieldOf(err)
		return warning(msgDebtEditInvalid, field), nil
	}
	if err := a.commitDebts(ctx, next); err != nil {
		return Notice{}, err
	}
	return success(msgDebtEdited), nil
}

// EditFormFor prefills an edit form with the debt's current values, or
// returns ok=false with a warning when no debt has that id.
func (a *App) EditFormFor(id int64) (DebtEditForm, Notice, bool) {
	d, ok := ledger.FindDebt(a.debts, id)
	if !ok {
		return DebtEditForm{}, warning(msgNotFound, ""), false
	}
	return DebtEditForm{
		Customer: d.Customer,
		Product:  d.Product,
		Qty:      formatCount(d.Qty),
		Price:    formatCount(d.Price),
	}, Notice{}, true
}

func formatCount(n int64) string { return strconv.FormatInt(n, 10) }
