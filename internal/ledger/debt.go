package ledger

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/money"
)

var validate = validator.New()

// DebtInput is a new debt as entered. Field order is the validation order:
// the first failing field is the one reported.
type DebtInput struct {
	Customer string `validate:"required"`
	Product  string `validate:"required"`
	Qty      int64  `validate:"gt=0"`
	Price    int64  `validate:"gt=0"`
	DueDate  string `validate:"required,datetime=2006-01-02"`
}

// DebtEdit carries every editable field at once; an edit commits all or nothing.
type DebtEdit struct {
	Customer string `validate:"required"`
	Product  string `validate:"required"`
	Qty      int64  `validate:"gt=0"`
	Price    int64  `validate:"gt=0"`
}

var structFields = map[string]Field{
	"Customer": FieldCustomer,
	"Product":  FieldProduct,
	"Qty":      FieldQty,
	"Price":    FieldPrice,
	"DueDate":  FieldDueDate,
}

// check runs struct validation and converts the first failure into a FieldError.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	reason := "invalid"
	switch first.Tag() {
	case "required":
		reason = "required"
	case "gt":
		reason = "must be greater than " + first.Param()
	case "datetime":
		reason = "must be a YYYY-MM-DD date"
	}
	return fieldErr(structFields[first.StructField()], reason)
}

// AddDebt validates in and prepends an unpaid debt with its total computed.
func AddDebt(debts []model.Debt, id int64, in DebtInput, now time.Time) ([]model.Debt, error) {
	in.Customer = strings.TrimSpace(in.Customer)
	in.Product = strings.TrimSpace(in.Product)
	in.DueDate = strings.TrimSpace(in.DueDate)
	if err := check(in); err != nil {
		return debts, err
	}
	total, err := money.Product(in.Qty, in.Price)
	if err != nil {
		return debts, fieldErr(FieldPrice, "total too large")
	}
	due, err := model.ParseDate(in.DueDate)
	if err != nil {
		return debts, fieldErr(FieldDueDate, err.Error())
	}
	d := model.Debt{
		ID:        id,
		Customer:  in.Customer,
		Product:   in.Product,
		Qty:       in.Qty,
		Price:     in.Price,
		Total:     total,
		DueDate:   due,
		CreatedAt: now,
	}
	out := make([]model.Debt, 0, len(debts)+1)
	out = append(out, d)
	return append(out, debts...), nil
}

// ToggleDebtPaid flips the paid flag of the matching debt.
func ToggleDebtPaid(debts []model.Debt, id int64) ([]model.Debt, bool) {
	i := indexDebt(debts, id)
	if i < 0 {
		return debts, false
	}
	out := cloneDebts(debts)
	out[i].Paid = !out[i].Paid
	return out, true
}

// EditDebt replaces customer, product, qty and price together and recomputes
// the total. On any validation failure nothing changes.
func EditDebt(debts []model.Debt, id int64, e DebtEdit) ([]model.Debt, error) {
	i := indexDebt(debts, id)
	if i < 0 {
		return debts, ErrNotFound
	}
	e.Customer = strings.TrimSpace(e.Customer)
	e.Product = strings.TrimSpace(e.Product)
	if err := check(e); err != nil {
		return debts, err
	}
	total, err := money.Product(e.Qty, e.Price)
	if err != nil {
		return debts, fieldErr(FieldPrice, "total too large")
	}
	out := cloneDebts(debts)
	out[i].Customer = e.Customer
	out[i].Product = e.Product
	out[i].Qty = e.Qty
	out[i].Price = e.Price
	out[i].Total = total
	return out, nil
}

func RemoveDebt(debts []model.Debt, id int64) ([]model.Debt, bool) {
	i := indexDebt(debts, id)
	if i < 0 {
		return debts, false
	}
	out := make([]model.Debt, 0, len(debts)-1)
	out = append(out, debts[:i]...)
	return append(out, debts[i+1:]...), true
}

// ClearPaid drops every paid debt and reports how many went.
func ClearPaid(debts []model.Debt) ([]model.Debt, int) {
	out := make([]model.Debt, 0, len(debts))
	for _, d := range debts {
		if !d.Paid {
			out = append(out, d)
		}
	}
	return out, len(debts) - len(out)
}

func CountPaid(debts []model.Debt) int {
	n := 0
	for _, d := range debts {
		if d.Paid {
			n++
		}
	}
	return n
}

// SortDebts returns a sorted copy; the input order is left alone.
func SortDebts(debts []model.Debt, key model.SortKey) []model.Debt {
	out := cloneDebts(debts)
	switch key {
	case model.SortByAmount:
		slices.SortStableFunc(out, func(a, b model.Debt) int { return cmp.Compare(b.Total, a.Total) })
	default:
		slices.SortStableFunc(out, func(a, b model.Debt) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
	return out
}

// IsOverdue is true for an unpaid debt whose due day is strictly before now's day.
func IsOverdue(d model.Debt, now time.Time) bool {
	if d.Paid || d.DueDate.IsZero() {
		return false
	}
	return d.DueDate.Before(model.NewDate(now))
}

// Summary holds the aggregate counters shown above the debt list.
type Summary struct {
	Count     int
	Customers int
	Overdue   int
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Pending   decimal.Decimal
}

func Summarize(debts []model.Debt, now time.Time) Summary {
	s := Summary{Count: len(debts), Total: decimal.Zero, Paid: decimal.Zero}
	customers := make(map[string]struct{}, len(debts))
	for _, d := range debts {
		amount := money.Sum(d.Total)
		s.Total = s.Total.Add(amount)
		if d.Paid {
			s.Paid = s.Paid.Add(amount)
		}
		if IsOverdue(d, now) {
			s.Overdue++
		}
		customers[d.Customer] = struct{}{}
	}
	s.Pending = s.Total.Sub(s.Paid)
	s.Customers = len(customers)
	return s
}

func FindDebt(debts []model.Debt, id int64) (model.Debt, bool) {
	if i := indexDebt(debts, id); i >= 0 {
		return debts[i], true
	}
	return model.Debt{}, false
}

func indexDebt(debts []model.Debt, id int64) int {
	for i, d := range debts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func cloneDebts(debts []model.Debt) []model.Debt {
	return append([]model.Debt(nil), debts...)
}
