package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/ledger"
	"github.com/idilsaglam/nasiya/internal/ui"
)

type formField struct {
	field ledger.Field
	label string
	input textinput.Model
}

// debtForm is the add/edit form. Edit has no due date field.
type debtForm struct {
	editID int64
	fields []formField
	focus  int
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

func newDebtForm(values app.DebtForm) debtForm {
	f := debtForm{fields: []formField{
		{ledger.FieldCustomer, "Mijoz", newInput("Mijoz ismi", 100)},
		{ledger.FieldProduct, "Mahsulot", newInput("Mahsulot nomi", 100)},
		{ledger.FieldQty, "Miqdor", newInput("1", 12)},
		{ledger.FieldPrice, "Narx (so'm)", newInput("10 000", 20)},
		{ledger.FieldDueDate, "Qaytarish sanasi", newInput("YYYY-MM-DD", 10)},
	}}
	f.fields[0].input.SetValue(values.Customer)
	f.fields[1].input.SetValue(values.Product)
	f.fields[2].input.SetValue(values.Qty)
	f.fields[3].input.SetValue(values.Price)
	f.fields[4].input.SetValue(values.DueDate)
	f.fields[0].input.Focus()
	return f
}

func newDebtEditForm(id int64, values app.DebtEditForm) debtForm {
	f := newDebtForm(app.DebtForm{
		Customer: values.Customer,
		Product:  values.Product,
		Qty:      values.Qty,
		Price:    values.Price,
	})
	f.fields = f.fields[:4]
	f.editID = id
	return f
}

func (f *debtForm) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	i = (i%len(f.fields) + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[i].input.Focus()
	f.fields[i].input.CursorEnd()
}

// focusField moves the cursor to the input for field, if the form has one.
func (f *debtForm) focusField(field ledger.Field) {
	for i, ff := range f.fields {
		if ff.field == field {
			f.setFocus(i)
			return
		}
	}
}

func (f debtForm) focused() ledger.Field { return f.fields[f.focus].field }

func (f debtForm) value(field ledger.Field) string {
	for _, ff := range f.fields {
		if ff.field == field {
			return ff.input.Value()
		}
	}
	return ""
}

func (f debtForm) addValues() app.DebtForm {
	return app.DebtForm{
		Customer: f.value(ledger.FieldCustomer),
		Product:  f.value(ledger.FieldProduct),
		Qty:      f.value(ledger.FieldQty),
		Price:    f.value(ledger.FieldPrice),
		DueDate:  f.value(ledger.FieldDueDate),
	}
}

func (f debtForm) editValues() app.DebtEditForm {
	return app.DebtEditForm{
		Customer: f.value(ledger.FieldCustomer),
		Product:  f.value(ledger.FieldProduct),
		Qty:      f.value(ledger.FieldQty),
		Price:    f.value(ledger.FieldPrice),
	}
}

func (f debtForm) update(msg tea.Msg) (debtForm, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f debtForm) view() string {
	t := ui.Current()
	title := "Yangi nasiya"
	if f.editID != 0 {
		title = "Nasiyani tahrirlash"
	}
	lines := []string{t.Title.Render(title)}
	for i, ff := range f.fields {
		label := t.Muted.Render(ff.label)
		if i == f.focus {
			label = t.Accent.Render(ff.label)
		}
		lines = append(lines, label, ff.input.View())
	}
	lines = append(lines, t.Muted.Render("tab: keyingi   enter: saqlash   esc: bekor qilish"))
	return strings.Join(lines, "\n")
}
